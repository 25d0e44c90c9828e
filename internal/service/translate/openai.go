package translate

import (
	"context"
	"fmt"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
)

const (
	defaultOpenAIURL   = "https://api.openai.com/v1"
	defaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIClient is the fallback translation provider, tried when the primary
// is unconfigured or fails.
type OpenAIClient struct {
	httpc   *xhttp.Client
	baseURL string
	model   string
	apiKey  string
}

func NewOpenAI(httpc *xhttp.Client, baseURL, model, apiKey string) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultOpenAIURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIClient{httpc: httpc, baseURL: baseURL, model: model, apiKey: apiKey}
}

func (c *OpenAIClient) Name() string     { return "openai" }
func (c *OpenAIClient) Configured() bool { return c.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Translate runs one chat-completion call with JSON-object output forced.
func (c *OpenAIClient) Translate(ctx context.Context, headline, summary, articleText string) (models.Translation, error) {
	body := chatRequest{
		Model:       c.model,
		Temperature: 0.3,
		MaxTokens:   500,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "당신은 금융/투자 뉴스 전문 번역가입니다. 항상 JSON 형식으로만 응답합니다.",
			},
			{
				Role:    "user",
				Content: buildPrompt(headline, summary, articleText),
			},
		},
	}
	body.ResponseFormat.Type = "json_object"

	var resp chatResponse
	err := c.httpc.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
		},
		Body: body,
	}, &resp)
	if err != nil {
		return models.Translation{}, fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return models.Translation{}, fmt.Errorf("openai: empty choices")
	}
	return parseTranslation(resp.Choices[0].Message.Content)
}
