package translate

import (
	"context"
	"fmt"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
)

const (
	defaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel = "gemini-2.0-flash"
)

// GeminiClient is the primary translation provider.
type GeminiClient struct {
	httpc   *xhttp.Client
	baseURL string
	model   string
	apiKey  string
}

func NewGemini(httpc *xhttp.Client, baseURL, model, apiKey string) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultGeminiURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{httpc: httpc, baseURL: baseURL, model: model, apiKey: apiKey}
}

func (c *GeminiClient) Name() string     { return "gemini" }
func (c *GeminiClient) Configured() bool { return c.apiKey != "" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Translate runs one generateContent call and parses the JSON reply.
func (c *GeminiClient) Translate(ctx context.Context, headline, summary, articleText string) (models.Translation, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(headline, summary, articleText)}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     0.3,
			MaxOutputTokens: 500,
		},
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.baseURL, c.model)
	var resp geminiResponse
	err := c.httpc.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodPost,
		URL:         url,
		QueryParams: map[string]string{"key": c.apiKey},
		Body:        body,
	}, &resp)
	if err != nil {
		return models.Translation{}, fmt.Errorf("gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.Translation{}, fmt.Errorf("gemini: empty candidates")
	}
	return parseTranslation(resp.Candidates[0].Content.Parts[0].Text)
}
