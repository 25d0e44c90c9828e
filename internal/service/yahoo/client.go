package yahoo

import (
	"context"
	"fmt"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
)

const (
	defaultQuoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	defaultChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
)

// Client implements repository.MarketQuoter backed by the Yahoo Finance
// public quote and chart endpoints. No credentials are required.
type Client struct {
	httpc    *xhttp.Client
	quoteURL string
	chartURL string
}

// New creates a Yahoo Finance quote client.
func New(httpc *xhttp.Client, quoteURL, chartURL string) *Client {
	if quoteURL == "" {
		quoteURL = defaultQuoteURL
	}
	if chartURL == "" {
		chartURL = defaultChartURL
	}
	return &Client{httpc: httpc, quoteURL: quoteURL, chartURL: chartURL}
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketChange        float64 `json:"regularMarketChange"`
			RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// Quote returns the regular-market quote for one provider symbol.
func (c *Client) Quote(ctx context.Context, quoteSymbol string) (repository.Quote, error) {
	var resp quoteResponse
	err := c.httpc.GetJSON(ctx, c.quoteURL, map[string]string{
		"symbols": quoteSymbol,
	}, browserHeaders(), &resp)
	if err != nil {
		return repository.Quote{}, fmt.Errorf("yahoo quote %s: %w", quoteSymbol, err)
	}

	results := resp.QuoteResponse.Result
	if len(results) == 0 {
		return repository.Quote{}, fmt.Errorf("yahoo quote %s: empty result", quoteSymbol)
	}

	r := results[0]
	return repository.Quote{
		Price:         r.RegularMarketPrice,
		Change:        r.RegularMarketChange,
		ChangePercent: r.RegularMarketChangePercent,
	}, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// DailyCloses returns up to days trailing daily close prices, oldest first.
// Null closes (holidays, half-days) are skipped.
func (c *Client) DailyCloses(ctx context.Context, quoteSymbol string, days int) ([]float64, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	var resp chartResponse
	url := fmt.Sprintf("%s/%s", c.chartURL, quoteSymbol)
	err := c.httpc.GetJSON(ctx, url, map[string]string{
		"period1":  fmt.Sprintf("%d", start.Unix()),
		"period2":  fmt.Sprintf("%d", end.Unix()),
		"interval": "1d",
	}, browserHeaders(), &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", quoteSymbol, err)
	}

	results := resp.Chart.Result
	if len(results) == 0 || len(results[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: empty result", quoteSymbol)
	}

	raw := results[0].Indicators.Quote[0].Close
	closes := make([]float64, 0, len(raw))
	for _, p := range raw {
		if p != nil {
			closes = append(closes, *p)
		}
	}
	return closes, nil
}

func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":     "application/json",
	}
}
