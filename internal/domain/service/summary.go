package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
)

var kst = time.FixedZone("KST", 9*60*60)

var koreanWeekdays = []string{"일", "월", "화", "수", "목", "금", "토"}

// GenerateSummary composes the natural-language market recap from already
// aggregated markets, events, and sentiment. Each input may be empty or nil;
// missing sections degrade to empty strings.
func GenerateSummary(
	markets []models.AssetQuote,
	events []models.EconomicEvent,
	sentiment *models.SentimentReading,
	now time.Time,
) models.MarketSummary {
	kstNow := now.In(kst)
	dateStr := fmt.Sprintf("%d/%d (%s)", int(kstNow.Month()), kstNow.Day(), koreanWeekdays[int(kstNow.Weekday())])

	bySymbol := make(map[string]models.AssetQuote, len(markets))
	for _, m := range markets {
		bySymbol[m.Symbol] = m
	}

	return models.MarketSummary{
		Text:      narrativeText(bySymbol),
		Events:    eventsHighlight(events, now),
		Sentiment: sentimentHighlight(sentiment),
		Date:      dateStr,
	}
}

func narrativeText(bySymbol map[string]models.AssetQuote) string {
	var text strings.Builder

	sp500, hasSP := bySymbol["SPX"]
	nasdaq, hasND := bySymbol["NDX"]
	if hasSP && hasND {
		trend := overallTrend(sp500.ChangePercent, nasdaq.ChangePercent)
		text.WriteString(fmt.Sprintf("미국 증시는 S&P 500 %s, 나스닥 %s으로 %s를 보이고 있습니다. ",
			fmtChange(sp500), fmtChange(nasdaq), trend))
	}

	// Top two movers among BTC, gold, and oil, by absolute change.
	movers := make([]models.AssetQuote, 0, 3)
	for _, sym := range []string{"BTC", "GOLD", "OIL"} {
		if m, ok := bySymbol[sym]; ok {
			movers = append(movers, m)
		}
	}
	sort.SliceStable(movers, func(i, j int) bool {
		return abs(movers[i].ChangePercent) > abs(movers[j].ChangePercent)
	})
	if len(movers) > 2 {
		movers = movers[:2]
	}

	moverText := ""
	for _, asset := range movers {
		subject := asset.NameKo + subjectParticle(asset.NameKo)
		moverText += fmt.Sprintf("%s %s (%s)로 %s, ", subject, fmtPrice(asset), fmtChange(asset), describeTrend(asset.ChangePercent))
	}
	if strings.HasSuffix(moverText, ", ") {
		moverText = moverText[:len(moverText)-2] + "했습니다. "
	}
	text.WriteString(moverText)

	if usdkrw, ok := bySymbol["USDKRW"]; ok {
		text.WriteString(fmt.Sprintf("달러/원 환율은 %s (%s)입니다.", fmtPrice(usdkrw), fmtChange(usdkrw)))
	}

	return strings.TrimSpace(text.String())
}

func eventsHighlight(events []models.EconomicEvent, now time.Time) string {
	names := make([]string, 0, 3)
	for _, e := range events {
		if e.Impact != models.ImpactHigh || !inCurrentWeek(e.Datetime, now) {
			continue
		}
		d := e.Datetime.In(kst)
		names = append(names, fmt.Sprintf("%s (%d/%d)", e.NameKo, int(d.Month()), d.Day()))
		if len(names) == 3 {
			break
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "이번 주 주요 일정: " + strings.Join(names, ", ")
}

func sentimentHighlight(sentiment *models.SentimentReading) string {
	if sentiment == nil {
		return ""
	}
	var mood string
	switch {
	case sentiment.Value >= 75:
		mood = "시장 심리가 매우 낙관적입니다."
	case sentiment.Value >= 55:
		mood = "시장 심리가 낙관적입니다."
	case sentiment.Value >= 45:
		mood = "시장 심리가 중립적입니다."
	case sentiment.Value >= 25:
		mood = "시장 심리가 위축되어 있습니다."
	default:
		mood = "시장에 극심한 공포가 감지됩니다."
	}
	return fmt.Sprintf("공포/탐욕 지수: %d (%s) — %s", sentiment.Value, sentiment.LabelKo, mood)
}

// overallTrend classifies the combined index direction. Both beyond +0.1%
// is rising, both beyond -0.1% falling, both inside the band flat, else mixed.
func overallTrend(sp500Pct, nasdaqPct float64) string {
	bothUp := sp500Pct > 0.1 && nasdaqPct > 0.1
	bothDown := sp500Pct < -0.1 && nasdaqPct < -0.1

	switch {
	case bothUp:
		return "상승세"
	case bothDown:
		return "하락세"
	case abs(sp500Pct) < 0.1 && abs(nasdaqPct) < 0.1:
		return "보합세"
	default:
		return "혼조세"
	}
}

// describeTrend maps a percent change to a Korean trend word by magnitude.
func describeTrend(percent float64) string {
	a := abs(percent)
	switch {
	case a >= 3:
		return pick(percent, "급등", "급락")
	case a >= 1:
		return pick(percent, "큰 폭 상승", "큰 폭 하락")
	case a >= 0.5:
		return pick(percent, "상승", "하락")
	case a >= 0.1:
		return pick(percent, "소폭 상승", "소폭 하락")
	default:
		return "보합"
	}
}

func pick(percent float64, up, down string) string {
	if percent > 0 {
		return up
	}
	return down
}

// subjectParticle chooses the Korean subject particle (은/는) by whether the
// name's final Hangul syllable carries a final consonant.
func subjectParticle(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return "는"
	}
	last := runes[len(runes)-1]
	if last >= 0xAC00 && last <= 0xD7A3 && (last-0xAC00)%28 != 0 {
		return "은"
	}
	return "는"
}

// inCurrentWeek reports whether t falls in the Sunday-started week of now.
func inCurrentWeek(t, now time.Time) bool {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 7)
	return !t.Before(start) && t.Before(end)
}

func fmtPrice(asset models.AssetQuote) string {
	if asset.Category == models.CategoryForex && asset.Symbol == "USDKRW" {
		return "₩" + groupDigits(asset.Price, 2)
	}
	decimals := 2
	if asset.Price >= 100 {
		decimals = 0
	}
	return "$" + groupDigits(asset.Price, decimals)
}

func fmtChange(asset models.AssetQuote) string {
	sign := ""
	if asset.ChangePercent >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, asset.ChangePercent)
}

// groupDigits renders v with thousands separators and fixed decimals.
func groupDigits(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
