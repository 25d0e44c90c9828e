package finnhub

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
	"github.com/MatthewLee0811/InvestPulse/pkg/util"
)

const defaultBaseURL = "https://finnhub.io/api/v1"

const (
	maxGeneralNews   = 30
	maxSummaryLength = 200
)

// Client talks to the Finnhub REST API. It backs both the economic calendar
// and the general market news feed. Without an API key both Configured()
// checks report false and callers fall back to mock data.
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

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

type calendarResponse struct {
	EconomicCalendar []struct {
		Event    string      `json:"event"`
		Date     string      `json:"date"`
		Time     string      `json:"time"`
		Country  string      `json:"country"`
		Impact   string      `json:"impact"`
		Actual   interface{} `json:"actual"`
		Estimate interface{} `json:"estimate"`
		Prev     interface{} `json:"prev"`
		Unit     string      `json:"unit"`
	} `json:"economicCalendar"`
}

// Events fetches US economic calendar entries between from and to
// (inclusive dates). Non-US entries are dropped; each kept entry is
// localized and classified.
func (c *Client) Events(ctx context.Context, from, to time.Time) ([]models.EconomicEvent, error) {
	var resp calendarResponse
	err := c.httpc.GetJSON(ctx, c.baseURL+"/calendar/economic", map[string]string{
		"from":  util.FormatDate(from),
		"to":    util.FormatDate(to),
		"token": c.apiKey,
	}, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("finnhub calendar: %w", err)
	}

	events := make([]models.EconomicEvent, 0, len(resp.EconomicCalendar))
	for idx, e := range resp.EconomicCalendar {
		if e.Country != "US" {
			continue
		}
		events = append(events, models.EconomicEvent{
			ID:       fmt.Sprintf("finnhub-%d-%s", idx, e.Event),
			Name:     e.Event,
			NameKo:   KoreanEventName(e.Event),
			Datetime: eventTime(e.Date, e.Time),
			Country:  "US",
			Impact:   ClassifyImpact(e.Impact, e.Event),
			Actual:   numericString(e.Actual),
			Forecast: numericString(e.Estimate),
			Previous: numericString(e.Prev),
			Unit:     e.Unit,
		})
	}
	return events, nil
}

type newsItem struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Datetime int64  `json:"datetime"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Related  string `json:"related"`
}

// News fetches the general market news feed, capped at 30 items with
// summaries truncated to 200 characters.
func (c *Client) News(ctx context.Context) ([]models.NewsItem, error) {
	var items []newsItem
	err := c.httpc.GetJSON(ctx, c.baseURL+"/news", map[string]string{
		"category": "general",
		"token":    c.apiKey,
	}, nil, &items)
	if err != nil {
		return nil, fmt.Errorf("finnhub news: %w", err)
	}

	if len(items) > maxGeneralNews {
		items = items[:maxGeneralNews]
	}

	news := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		rawCategory := item.Category
		if rawCategory == "" {
			rawCategory = item.Related
		}
		news = append(news, models.NewsItem{
			ID:          fmt.Sprintf("finnhub-%d", item.ID),
			Headline:    item.Headline,
			Summary:     util.Truncate(item.Summary, maxSummaryLength),
			Source:      item.Source,
			URL:         item.URL,
			PublishedAt: time.Unix(item.Datetime, 0).UTC(),
			Category:    mapNewsCategory(rawCategory),
			ImageURL:    item.Image,
		})
	}
	return news, nil
}

// eventTime combines a provider date and optional HH:MM time, both UTC.
func eventTime(date, hhmm string) time.Time {
	if hhmm != "" {
		if t, err := time.Parse("2006-01-02T15:04", date+"T"+hhmm); err == nil {
			return t.UTC()
		}
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// numericString renders a provider value that may arrive as a JSON number,
// a string, or null.
func numericString(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", n)
	}
}
