package translate

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/MatthewLee0811/InvestPulse/pkg/util"
)

const (
	minParagraphLen = 30
	minArticleLen   = 50
	maxArticleLen   = 3000
)

// ArticleFetcher downloads a news article page and extracts its body text
// to enrich the translation prompt. Extraction is best effort; any failure
// yields an empty string and never an error the caller must handle.
type ArticleFetcher struct {
	client *http.Client
}

func NewArticleFetcher(timeout time.Duration) *ArticleFetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ArticleFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the extracted article text, or "" when the page cannot be
// fetched or yields too little usable text.
func (f *ArticleFetcher) Fetch(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := f.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	text := extractMainText(doc)
	if len(text) < minArticleLen {
		return ""
	}
	return text
}

// extractMainText prefers paragraphs inside an <article> element and falls
// back to all paragraphs. Short fragments (nav items, captions) are dropped.
func extractMainText(doc *goquery.Document) string {
	scope := doc.Selection
	if article := doc.Find("article").First(); article.Length() > 0 {
		scope = article
	}

	var paragraphs []string
	scope.Find("p").Each(func(_ int, s *goquery.Selection) {
		clean := strings.TrimSpace(s.Text())
		if len(clean) > minParagraphLen {
			paragraphs = append(paragraphs, clean)
		}
	})

	return util.Truncate(strings.Join(paragraphs, "\n"), maxArticleLen)
}
