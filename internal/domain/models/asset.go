package models

import "time"

// AssetCategory classifies a dashboard asset.
type AssetCategory string

const (
	CategoryStockIndex AssetCategory = "stock_index"
	CategoryCrypto     AssetCategory = "crypto"
	CategoryCommodity  AssetCategory = "commodity"
	CategoryForex      AssetCategory = "forex"
	CategoryBond       AssetCategory = "bond"
)

// AssetQuote is the canonical per-symbol market record served to the UI.
// Symbols with no data from any provider are still emitted as placeholders
// with zeroed numerics so the dashboard layout stays stable.
type AssetQuote struct {
	Symbol        string        `json:"symbol"`
	Name          string        `json:"name"`
	NameKo        string        `json:"nameKo"`
	Category      AssetCategory `json:"category"`
	Price         float64       `json:"price"`
	Change        float64       `json:"change"`
	ChangePercent float64       `json:"changePercent"`
	Sparkline     []float64     `json:"sparkline"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Placeholder returns a zeroed quote for an asset that produced no data.
func (a AssetConfig) Placeholder(now time.Time) AssetQuote {
	return AssetQuote{
		Symbol:    a.Symbol,
		Name:      a.Name,
		NameKo:    a.NameKo,
		Category:  a.Category,
		Sparkline: []float64{},
		UpdatedAt: now,
	}
}
