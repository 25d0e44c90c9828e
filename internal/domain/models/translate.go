package models

// TranslateRequest is the POST /api/news/summarize payload.
type TranslateRequest struct {
	NewsID   string `json:"newsId" validate:"required"`
	Headline string `json:"headline" validate:"required"`
	Summary  string `json:"summary"`
	URL      string `json:"url" validate:"omitempty,url"`
}

// Translation is a provider's raw translate/summarize output.
type Translation struct {
	TranslatedHeadline string `json:"translatedHeadline"`
	KoreanSummary      string `json:"koreanSummary"`
}

// NewsSummaryResult is the served translation, noting which provider produced
// it and whether it came from cache.
type NewsSummaryResult struct {
	TranslatedHeadline string `json:"translatedHeadline"`
	KoreanSummary      string `json:"koreanSummary"`
	Provider           string `json:"provider"`
	Cached             bool   `json:"cached"`
}

// TranslateResponse is the POST /api/news/summarize envelope.
type TranslateResponse struct {
	Success bool               `json:"success"`
	Data    *NewsSummaryResult `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
}
