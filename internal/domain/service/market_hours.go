package service

import (
	"fmt"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
)

// ExchangeDef holds the static session table for one exchange. Times are
// local wall-clock "HH:MM" strings in the exchange's timezone.
type ExchangeDef struct {
	ID               string
	Name             string
	Flag             string
	Timezone         string
	RegularOpen      string
	RegularClose     string
	PreMarketOpen    string // empty if no pre-market session
	AfterMarketClose string // empty if no after-market session
	Is24h            bool
	WeekendClosed    bool
}

// Exchanges is the fixed exchange table; treat it as immutable.
var Exchanges = []ExchangeDef{
	{
		ID: "us", Name: "미국", Flag: "🇺🇸",
		Timezone:    "America/New_York",
		RegularOpen: "09:30", RegularClose: "16:00",
		PreMarketOpen: "04:00", AfterMarketClose: "20:00",
		WeekendClosed: true,
	},
	{
		ID: "kr", Name: "한국", Flag: "🇰🇷",
		Timezone:    "Asia/Seoul",
		RegularOpen: "09:00", RegularClose: "15:30",
		WeekendClosed: true,
	},
	{
		ID: "crypto", Name: "크립토", Flag: "🪙",
		Timezone:    "UTC",
		RegularOpen: "00:00", RegularClose: "23:59",
		Is24h: true,
	},
	{
		ID: "eu", Name: "유럽", Flag: "🇪🇺",
		Timezone:    "Europe/London",
		RegularOpen: "08:00", RegularClose: "16:30",
		WeekendClosed: true,
	},
}

// AllMarketStatuses computes the session state of every exchange at now.
func AllMarketStatuses(now time.Time) []models.MarketStatus {
	statuses := make([]models.MarketStatus, 0, len(Exchanges))
	for _, def := range Exchanges {
		statuses = append(statuses, MarketStatusFor(def, now))
	}
	return statuses
}

// MarketStatusFor computes one exchange's session state from local wall-clock
// time. Stateless: recomputed from scratch on every call.
func MarketStatusFor(def ExchangeDef, now time.Time) models.MarketStatus {
	status := models.MarketStatus{
		ID:   def.ID,
		Name: def.Name,
		Flag: def.Flag,
	}

	if def.Is24h {
		status.Status = models.StatusOpen
		status.StatusLabel = "24/7 개장"
		return status
	}

	local := now.In(locationOf(def.Timezone))
	currentMin := local.Hour()*60 + local.Minute()
	weekday := local.Weekday()
	isWeekend := weekday == time.Sunday || weekday == time.Saturday

	openMin := minutesOf(def.RegularOpen)
	closeMin := minutesOf(def.RegularClose)

	if def.WeekendClosed && isWeekend {
		daysUntilMonday := 1
		if weekday == time.Saturday {
			daysUntilMonday = 2
		}
		remain := daysUntilMonday*24*60 - currentMin + openMin
		status.Status = models.StatusClosed
		status.StatusLabel = "마감 (주말)"
		status.TimeLabel = "개장까지 " + formatMinuteDiff(remain)
		return status
	}

	if currentMin >= openMin && currentMin < closeMin {
		status.Status = models.StatusOpen
		status.StatusLabel = "개장 중"
		status.TimeLabel = "마감까지 " + formatMinuteDiff(closeMin-currentMin)
		return status
	}

	if def.PreMarketOpen != "" {
		preOpen := minutesOf(def.PreMarketOpen)
		if currentMin >= preOpen && currentMin < openMin {
			status.Status = models.StatusPreMarket
			status.StatusLabel = "프리마켓"
			status.TimeLabel = "정규장까지 " + formatMinuteDiff(openMin-currentMin)
			return status
		}
	}

	if def.AfterMarketClose != "" {
		afterClose := minutesOf(def.AfterMarketClose)
		if currentMin >= closeMin && currentMin < afterClose {
			status.Status = models.StatusAfterMarket
			status.StatusLabel = "애프터마켓"
			status.TimeLabel = "종료까지 " + formatMinuteDiff(afterClose-currentMin)
			return status
		}
	}

	nextSessionMin := openMin
	if def.PreMarketOpen != "" {
		nextSessionMin = minutesOf(def.PreMarketOpen)
	}

	var remain int
	if currentMin >= closeMin {
		// After today's close: count to tomorrow's first session.
		remain = (24*60 - currentMin) + nextSessionMin
	} else {
		remain = nextSessionMin - currentMin
	}

	status.Status = models.StatusClosed
	status.StatusLabel = "마감"
	status.TimeLabel = "개장까지 " + formatMinuteDiff(remain)
	return status
}

func locationOf(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func minutesOf(hhmm string) int {
	var h, m int
	fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	return h*60 + m
}

func formatMinuteDiff(diffMin int) string {
	if diffMin <= 0 {
		return ""
	}
	h := diffMin / 60
	m := diffMin % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%d분", m)
	case m == 0:
		return fmt.Sprintf("%d시간", h)
	default:
		return fmt.Sprintf("%d시간 %d분", h, m)
	}
}
