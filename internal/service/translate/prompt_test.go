package translate

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseTranslation(t *testing.T) {
	raw := "```json\n{\"translatedHeadline\": \"연준 금리 동결\", \"koreanSummary\": \"요약입니다.\"}\n```"

	got, err := parseTranslation(raw)
	if err != nil {
		t.Fatalf("parseTranslation: %v", err)
	}
	if got.TranslatedHeadline != "연준 금리 동결" {
		t.Errorf("headline = %q", got.TranslatedHeadline)
	}
	if got.KoreanSummary != "요약입니다." {
		t.Errorf("summary = %q", got.KoreanSummary)
	}
}

func TestParseTranslationRejectsEmpty(t *testing.T) {
	if _, err := parseTranslation(`{"translatedHeadline": "", "koreanSummary": ""}`); err == nil {
		t.Fatal("expected error for empty translation")
	}
	if _, err := parseTranslation("not json at all"); err == nil {
		t.Fatal("expected error for malformed reply")
	}
}

func TestBuildPromptTruncatesArticle(t *testing.T) {
	long := strings.Repeat("a", maxArticleLen+500)

	prompt := buildPrompt("Fed holds rates", "Short summary", long)

	if !strings.Contains(prompt, "제목: Fed holds rates") {
		t.Error("prompt missing headline")
	}
	if !strings.Contains(prompt, "본문: ") {
		t.Error("prompt missing article section")
	}
	if strings.Count(prompt, "a") > maxArticleLen {
		t.Errorf("article text not truncated to %d", maxArticleLen)
	}

	short := buildPrompt("h", "s", "")
	if strings.Contains(short, "본문") {
		t.Error("empty article should omit the body section")
	}
}

func TestBuildPromptKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("금", maxArticleLen+10)

	prompt := buildPrompt("h", "s", long)

	if !utf8.ValidString(prompt) {
		t.Fatal("truncation split a multibyte sequence")
	}
	if got := strings.Count(prompt, "금"); got != maxArticleLen {
		t.Fatalf("article runes = %d, want %d", got, maxArticleLen)
	}
}
