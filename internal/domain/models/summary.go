package models

// MarketSummary is the template-generated market recap. It is derived from
// already-aggregated data and never persisted.
type MarketSummary struct {
	Text      string `json:"text"`
	Events    string `json:"events"`
	Sentiment string `json:"sentiment"`
	Date      string `json:"date"`
}
