package spot

import (
	"context"
	"fmt"
	"strconv"

	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
)

const (
	defaultUpbitURL    = "https://api.upbit.com/v1"
	defaultCoinbaseURL = "https://api.coinbase.com/v2"
	defaultBinanceURL  = "https://api.binance.com/api/v3"
)

// Client implements repository.SpotRates by combining three keyless
// exchange ticker endpoints. The rates feed the kimchi premium and the
// Coinbase premium derivations.
type Client struct {
	httpc       *xhttp.Client
	upbitURL    string
	coinbaseURL string
	binanceURL  string
}

func New(httpc *xhttp.Client, upbitURL, coinbaseURL, binanceURL string) *Client {
	if upbitURL == "" {
		upbitURL = defaultUpbitURL
	}
	if coinbaseURL == "" {
		coinbaseURL = defaultCoinbaseURL
	}
	if binanceURL == "" {
		binanceURL = defaultBinanceURL
	}
	return &Client{
		httpc:       httpc,
		upbitURL:    upbitURL,
		coinbaseURL: coinbaseURL,
		binanceURL:  binanceURL,
	}
}

// USDTKRW returns the Upbit KRW-USDT trade price.
func (c *Client) USDTKRW(ctx context.Context) (float64, error) {
	var tickers []struct {
		TradePrice float64 `json:"trade_price"`
	}
	err := c.httpc.GetJSON(ctx, c.upbitURL+"/ticker", map[string]string{
		"markets": "KRW-USDT",
	}, nil, &tickers)
	if err != nil {
		return 0, fmt.Errorf("upbit ticker: %w", err)
	}
	if len(tickers) == 0 {
		return 0, fmt.Errorf("upbit ticker: empty result")
	}
	return tickers[0].TradePrice, nil
}

// CoinbaseBTC returns the Coinbase BTC-USD spot price.
func (c *Client) CoinbaseBTC(ctx context.Context) (float64, error) {
	var resp struct {
		Data struct {
			Amount string `json:"amount"`
		} `json:"data"`
	}
	err := c.httpc.GetJSON(ctx, c.coinbaseURL+"/prices/BTC-USD/spot", nil, nil, &resp)
	if err != nil {
		return 0, fmt.Errorf("coinbase spot: %w", err)
	}
	price, err := strconv.ParseFloat(resp.Data.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("coinbase spot: bad amount %q", resp.Data.Amount)
	}
	return price, nil
}

// BinanceBTC returns the Binance BTCUSDT last price.
func (c *Client) BinanceBTC(ctx context.Context) (float64, error) {
	var resp struct {
		Price string `json:"price"`
	}
	err := c.httpc.GetJSON(ctx, c.binanceURL+"/ticker/price", map[string]string{
		"symbol": "BTCUSDT",
	}, nil, &resp)
	if err != nil {
		return 0, fmt.Errorf("binance ticker: %w", err)
	}
	price, err := strconv.ParseFloat(resp.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("binance ticker: bad price %q", resp.Price)
	}
	return price, nil
}
