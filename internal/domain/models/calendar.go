package models

import "time"

// Impact is an economic event importance tier.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// impactOrder sorts high before medium before low.
var impactOrder = map[Impact]int{
	ImpactHigh:   0,
	ImpactMedium: 1,
	ImpactLow:    2,
}

// Rank returns the sort rank of the impact (lower sorts first).
func (i Impact) Rank() int {
	if r, ok := impactOrder[i]; ok {
		return r
	}
	return len(impactOrder)
}

// EconomicEvent is one entry of the economic calendar. Actual/forecast/previous
// are kept as strings because providers emit mixed numeric, percent, and
// textual formats.
type EconomicEvent struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	NameKo   string    `json:"nameKo"`
	Datetime time.Time `json:"datetime"`
	Country  string    `json:"country"`
	Impact   Impact    `json:"impact"`
	Actual   string    `json:"actual,omitempty"`
	Forecast string    `json:"forecast,omitempty"`
	Previous string    `json:"previous,omitempty"`
	Unit     string    `json:"unit,omitempty"`
}

// CalendarTab selects a calendar date range.
type CalendarTab string

const (
	TabThisWeek  CalendarTab = "this_week"
	TabThisMonth CalendarTab = "this_month"
	TabNextMonth CalendarTab = "next_month"
)
