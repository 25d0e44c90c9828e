package models

// MarketStatusType is the session state of an exchange.
type MarketStatusType string

const (
	StatusOpen        MarketStatusType = "open"
	StatusPreMarket   MarketStatusType = "pre_market"
	StatusAfterMarket MarketStatusType = "after_market"
	StatusClosed      MarketStatusType = "closed"
)

// MarketStatus is a point-in-time session snapshot for one exchange,
// including a human-readable countdown to the next transition.
type MarketStatus struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Flag        string           `json:"flag"`
	Status      MarketStatusType `json:"status"`
	StatusLabel string           `json:"statusLabel"`
	TimeLabel   string           `json:"timeLabel"`
}
