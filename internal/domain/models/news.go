package models

import "time"

// NewsCategory classifies a news item for the dashboard filter tabs.
type NewsCategory string

const (
	NewsMarket    NewsCategory = "market"
	NewsEconomy   NewsCategory = "economy"
	NewsCrypto    NewsCategory = "crypto"
	NewsCommodity NewsCategory = "commodity"
	NewsFedPolicy NewsCategory = "fed_policy"
)

// NewsItem is one normalized news entry, merged from multiple providers.
type NewsItem struct {
	ID          string       `json:"id"`
	Headline    string       `json:"headline"`
	Summary     string       `json:"summary"`
	Source      string       `json:"source"`
	URL         string       `json:"url"`
	PublishedAt time.Time    `json:"publishedAt"`
	Category    NewsCategory `json:"category"`
	ImageURL    string       `json:"imageUrl,omitempty"`
}
