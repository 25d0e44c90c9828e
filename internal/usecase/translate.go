package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

// ErrNoTranslator means no translation provider has an API key configured.
var ErrNoTranslator = errors.New("no translation provider configured")

// ErrTranslateUnavailable means every configured provider failed.
var ErrTranslateUnavailable = errors.New("translation providers unavailable")

// TranslateUsecase translates and summarizes one news item into Korean,
// trying providers in order and caching successes per news id.
type TranslateUsecase struct {
	providers []repository.Translator
	articles  repository.ArticleFetcher
	store     cache.Store
	metrics   repository.Metrics
	log       *logger.Logger
	ttl       time.Duration
}

func NewTranslateUsecase(
	providers []repository.Translator,
	articles repository.ArticleFetcher,
	store cache.Store,
	metrics repository.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *TranslateUsecase {
	return &TranslateUsecase{
		providers: providers,
		articles:  articles,
		store:     store,
		metrics:   metrics,
		log:       log,
		ttl:       ttl,
	}
}

// Translate serves a cached translation when fresh, otherwise walks the
// provider chain. The Cached flag on the result tells the two cases apart.
func (u *TranslateUsecase) Translate(ctx context.Context, req models.TranslateRequest) (models.NewsSummaryResult, error) {
	key := "news-summary:" + req.NewsID

	var cached models.NewsSummaryResult
	if u.store.Get(ctx, key, u.ttl, &cached) {
		u.metrics.RecordCacheRead("translate", "hit")
		cached.Cached = true
		return cached, nil
	}
	u.metrics.RecordCacheRead("translate", "miss")

	configured := make([]repository.Translator, 0, len(u.providers))
	for _, p := range u.providers {
		if p.Configured() {
			configured = append(configured, p)
		}
	}
	if len(configured) == 0 {
		return models.NewsSummaryResult{}, ErrNoTranslator
	}

	// Article text enriches the prompt but is never required.
	articleText := u.articles.Fetch(ctx, req.URL)

	for _, p := range configured {
		translation, err := p.Translate(ctx, req.Headline, req.Summary, articleText)
		if err != nil {
			u.metrics.RecordFetch(p.Name(), "error")
			u.log.Warn("translation provider failed",
				logger.String("provider", p.Name()), logger.Error(err))
			continue
		}
		u.metrics.RecordFetch(p.Name(), "success")

		result := models.NewsSummaryResult{
			TranslatedHeadline: translation.TranslatedHeadline,
			KoreanSummary:      translation.KoreanSummary,
			Provider:           p.Name(),
		}
		u.store.Set(ctx, key, result)
		return result, nil
	}
	return models.NewsSummaryResult{}, ErrTranslateUnavailable
}
