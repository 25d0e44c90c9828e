package translate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractMainTextPrefersArticleAndTruncates(t *testing.T) {
	para := strings.Repeat("가", 1600)
	html := "<html><body>" +
		"<p>outside paragraph that is long enough to be kept on its own</p>" +
		"<article><p>nav</p><p>" + para + "</p><p>" + para + "</p><p>" + para + "</p></article>" +
		"</body></html>"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	text := extractMainText(doc)
	if strings.Contains(text, "outside") {
		t.Fatal("paragraphs outside <article> must be ignored when one exists")
	}
	if strings.Contains(text, "nav") {
		t.Fatal("short fragments must be dropped")
	}
	if !utf8.ValidString(text) {
		t.Fatal("truncation split a multibyte sequence")
	}
	if n := utf8.RuneCountInString(text); n != maxArticleLen {
		t.Fatalf("text runes = %d, want %d", n, maxArticleLen)
	}
}
