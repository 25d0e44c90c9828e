package translate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/pkg/util"
)

const promptFormat = `당신은 금융/투자 뉴스 전문 번역가입니다.

아래 영어 뉴스를 한국어로 번역하고 요약해주세요.

%s

다음 JSON 형식으로만 응답하세요 (다른 텍스트 없이):
{
  "translatedHeadline": "번역된 제목",
  "koreanSummary": "한국어 3줄 요약. 투자자 관점에서 핵심만 간결하게. 각 문장은 마침표로 끝냅니다."
}`

// buildPrompt assembles the translation prompt. Article text beyond 3000
// runes is cut to keep the request within model input limits.
func buildPrompt(headline, summary, articleText string) string {
	content := fmt.Sprintf("제목: %s\n요약: %s", headline, summary)
	if articleText != "" {
		content += "\n본문: " + util.Truncate(articleText, maxArticleLen)
	}
	return fmt.Sprintf(promptFormat, content)
}

// parseTranslation decodes a model reply into a Translation, stripping
// markdown code fences the model may wrap around the JSON.
func parseTranslation(text string) (models.Translation, error) {
	cleaned := strings.NewReplacer("```json", "", "```", "").Replace(text)
	cleaned = strings.TrimSpace(cleaned)

	var t models.Translation
	if err := json.Unmarshal([]byte(cleaned), &t); err != nil {
		return models.Translation{}, fmt.Errorf("parse translation: %w", err)
	}
	if t.TranslatedHeadline == "" && t.KoreanSummary == "" {
		return models.Translation{}, fmt.Errorf("parse translation: empty result")
	}
	return t, nil
}
