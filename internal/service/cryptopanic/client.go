package cryptopanic

import (
	"context"
	"fmt"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
)

const defaultBaseURL = "https://cryptopanic.com/api/v1"

const maxPosts = 10

// Client fetches hot crypto news posts from CryptoPanic.
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

func (c *Client) Configured() bool { return c.apiKey != "" }

type postsResponse struct {
	Results []struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		URL    string `json:"url"`
		Source struct {
			Title string `json:"title"`
		} `json:"source"`
		PublishedAt time.Time `json:"published_at"`
	} `json:"results"`
}

// News returns the top hot crypto posts, capped at 10. All items carry the
// crypto category and an empty summary.
func (c *Client) News(ctx context.Context) ([]models.NewsItem, error) {
	var resp postsResponse
	err := c.httpc.GetJSON(ctx, c.baseURL+"/posts/", map[string]string{
		"auth_token": c.apiKey,
		"public":     "true",
		"kind":       "news",
		"filter":     "hot",
	}, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("cryptopanic posts: %w", err)
	}

	posts := resp.Results
	if len(posts) > maxPosts {
		posts = posts[:maxPosts]
	}

	news := make([]models.NewsItem, 0, len(posts))
	for _, p := range posts {
		source := p.Source.Title
		if source == "" {
			source = "CryptoPanic"
		}
		news = append(news, models.NewsItem{
			ID:          fmt.Sprintf("crypto-%d", p.ID),
			Headline:    p.Title,
			Source:      source,
			URL:         p.URL,
			PublishedAt: p.PublishedAt.UTC(),
			Category:    models.NewsCrypto,
		})
	}
	return news, nil
}
