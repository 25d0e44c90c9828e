package service

import (
	"strings"
	"testing"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
)

func quote(symbol string, pct float64) models.AssetQuote {
	cfg, _ := models.AssetBySymbol(symbol)
	return models.AssetQuote{
		Symbol:        symbol,
		Name:          cfg.Name,
		NameKo:        cfg.NameKo,
		Category:      cfg.Category,
		Price:         100,
		ChangePercent: pct,
	}
}

func TestOverallTrend(t *testing.T) {
	cases := []struct {
		sp, nd float64
		want   string
	}{
		{1.5, 1.8, "상승세"},
		{-0.5, -1.2, "하락세"},
		{0.05, -0.05, "보합세"},
		{0.8, -0.8, "혼조세"},
	}
	for _, c := range cases {
		if got := overallTrend(c.sp, c.nd); got != c.want {
			t.Fatalf("overallTrend(%v, %v) = %s, want %s", c.sp, c.nd, got, c.want)
		}
	}
}

func TestDescribeTrend(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{3.0, "급등"},
		{-3.5, "급락"},
		{1.0, "큰 폭 상승"},
		{-1.2, "큰 폭 하락"},
		{0.5, "상승"},
		{-0.6, "하락"},
		{0.1, "소폭 상승"},
		{-0.2, "소폭 하락"},
		{0.05, "보합"},
	}
	for _, c := range cases {
		if got := describeTrend(c.pct); got != c.want {
			t.Fatalf("describeTrend(%v) = %s, want %s", c.pct, got, c.want)
		}
	}
}

func TestSentimentMoodBuckets(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{80, "매우 낙관적"},
		{75, "매우 낙관적"},
		{74, "심리가 낙관적"},
		{55, "심리가 낙관적"},
		{54, "중립적"},
		{45, "중립적"},
		{44, "위축"},
		{30, "위축"},
		{25, "위축"},
		{24, "극심한 공포"},
	}
	for _, c := range cases {
		reading := &models.SentimentReading{Value: c.value, LabelKo: "탐욕"}
		got := sentimentHighlight(reading)
		if !strings.Contains(got, c.want) {
			t.Fatalf("value %d: %q does not contain %q", c.value, got, c.want)
		}
	}
}

func TestGenerateSummaryRisingNarrative(t *testing.T) {
	markets := []models.AssetQuote{
		quote("SPX", 1.5),
		quote("NDX", 1.8),
	}
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

	s := GenerateSummary(markets, nil, nil, now)

	if !strings.Contains(s.Text, "상승세") {
		t.Fatalf("expected rising narrative, got %q", s.Text)
	}
	if !strings.Contains(s.Text, "+1.50%") || !strings.Contains(s.Text, "+1.80%") {
		t.Fatalf("expected formatted changes, got %q", s.Text)
	}
}

func TestGenerateSummaryMovers(t *testing.T) {
	markets := []models.AssetQuote{
		quote("BTC", 3.2),
		quote("GOLD", 0.3),
		quote("OIL", -1.1),
	}
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

	s := GenerateSummary(markets, nil, nil, now)

	// Two largest movers: BTC (3.2) and OIL (1.1); gold is dropped.
	if !strings.Contains(s.Text, "비트코인") || !strings.Contains(s.Text, "원유(WTI)") {
		t.Fatalf("expected top movers named, got %q", s.Text)
	}
	if strings.Contains(s.Text, "금은") {
		t.Fatalf("expected third mover dropped, got %q", s.Text)
	}
	if !strings.Contains(s.Text, "급등") {
		t.Fatalf("expected surge wording for +3.2%%, got %q", s.Text)
	}
}

func TestGenerateSummaryEventsHighlight(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC) // Wednesday
	events := []models.EconomicEvent{
		{NameKo: "소비자물가지수", Impact: models.ImpactHigh, Datetime: now.AddDate(0, 0, 1)},
		{NameKo: "소매판매", Impact: models.ImpactMedium, Datetime: now.AddDate(0, 0, 1)},
		{NameKo: "FOMC 금리 결정", Impact: models.ImpactHigh, Datetime: now.AddDate(0, 0, 30)},
	}

	s := GenerateSummary(nil, events, nil, now)

	if !strings.Contains(s.Events, "소비자물가지수") {
		t.Fatalf("expected this week's high-impact event, got %q", s.Events)
	}
	if strings.Contains(s.Events, "소매판매") {
		t.Fatalf("medium impact must not appear, got %q", s.Events)
	}
	if strings.Contains(s.Events, "FOMC") {
		t.Fatalf("event outside the current week must not appear, got %q", s.Events)
	}
}

func TestGenerateSummaryEmptyInputs(t *testing.T) {
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

	s := GenerateSummary(nil, nil, nil, now)

	if s.Text != "" || s.Events != "" || s.Sentiment != "" {
		t.Fatalf("expected empty sections, got %+v", s)
	}
	if s.Date == "" {
		t.Fatalf("expected date to always be set")
	}
}

func TestSubjectParticle(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"금", "은"},
		{"비트코인", "은"},
		{"원유(WTI)", "는"},
	}
	for _, c := range cases {
		if got := subjectParticle(c.name); got != c.want {
			t.Fatalf("subjectParticle(%q) = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	if got := groupDigits(1430.5, 2); got != "1,430.50" {
		t.Fatalf("groupDigits = %s", got)
	}
	if got := groupDigits(97234, 0); got != "97,234" {
		t.Fatalf("groupDigits = %s", got)
	}
}
