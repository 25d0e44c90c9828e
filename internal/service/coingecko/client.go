package coingecko

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// sparklineStep downsamples the 7-day hourly sparkline. Every 8th point of
// ~168 hourly samples keeps roughly 21 points.
const sparklineStep = 8

// Client implements repository.CryptoMarkets against the CoinGecko REST API.
// The API key is optional; without it the free-tier limits apply.
type Client struct {
	httpc   *xhttp.Client
	baseURL string
	apiKey  string
}

func New(httpc *xhttp.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{httpc: httpc, baseURL: baseURL, apiKey: apiKey}
}

type marketEntry struct {
	ID                       string   `json:"id"`
	CurrentPrice             *float64 `json:"current_price"`
	PriceChange24h           *float64 `json:"price_change_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	SparklineIn7d            struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

// Markets fetches all tracked coins in one batch call and returns them keyed
// by catalog symbol. Null provider fields stay nil so callers can overlay
// only the fields that are present.
func (c *Client) Markets(ctx context.Context) (map[string]repository.CryptoQuote, error) {
	ids := make([]string, 0, len(models.CoinGeckoIDs))
	symbolByID := make(map[string]string, len(models.CoinGeckoIDs))
	for symbol, id := range models.CoinGeckoIDs {
		ids = append(ids, id)
		symbolByID[id] = symbol
	}
	sort.Strings(ids)

	var entries []marketEntry
	err := c.httpc.GetJSON(ctx, c.baseURL+"/coins/markets", map[string]string{
		"vs_currency":             "usd",
		"ids":                     strings.Join(ids, ","),
		"sparkline":               "true",
		"price_change_percentage": "24h",
	}, c.headers(), &entries)
	if err != nil {
		return nil, fmt.Errorf("coingecko markets: %w", err)
	}

	quotes := make(map[string]repository.CryptoQuote, len(entries))
	for _, e := range entries {
		symbol, ok := symbolByID[e.ID]
		if !ok {
			continue
		}
		quotes[symbol] = repository.CryptoQuote{
			Price:         e.CurrentPrice,
			Change:        e.PriceChange24h,
			ChangePercent: e.PriceChangePercentage24h,
			Sparkline:     downsample(e.SparklineIn7d.Price, sparklineStep),
		}
	}
	return quotes, nil
}

type globalResponse struct {
	Data struct {
		MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
	} `json:"data"`
}

// GlobalDominance returns BTC and USDT market-cap dominance percentages.
func (c *Client) GlobalDominance(ctx context.Context) (repository.Dominance, error) {
	var resp globalResponse
	err := c.httpc.GetJSON(ctx, c.baseURL+"/global", nil, c.headers(), &resp)
	if err != nil {
		return repository.Dominance{}, fmt.Errorf("coingecko global: %w", err)
	}
	pct := resp.Data.MarketCapPercentage
	if len(pct) == 0 {
		return repository.Dominance{}, fmt.Errorf("coingecko global: empty market cap percentages")
	}
	return repository.Dominance{
		BTC:  pct["btc"],
		USDT: pct["usdt"],
	}, nil
}

func (c *Client) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"x-cg-demo-api-key": c.apiKey}
}

func downsample(points []float64, step int) []float64 {
	if len(points) == 0 {
		return nil
	}
	out := make([]float64, 0, len(points)/step+1)
	for i := 0; i < len(points); i += step {
		out = append(out, points[i])
	}
	return out
}
