package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/service"
	"github.com/MatthewLee0811/InvestPulse/internal/usecase"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

// Localized dashboard error messages.
const (
	msgMarketsUnavailable   = "시세 데이터를 불러올 수 없습니다."
	msgCalendarUnavailable  = "경제 일정을 불러올 수 없습니다."
	msgNewsUnavailable      = "뉴스를 불러올 수 없습니다."
	msgSentimentUnavailable = "공포/탐욕 지수를 불러올 수 없습니다."
	msgSummaryUnavailable   = "시장 요약을 불러올 수 없습니다."
	msgMissingParams        = "필수 파라미터 누락"
	msgNoTranslatorKeys     = "AI API 키가 설정되지 않았습니다."
	msgTranslateUnavailable = "번역 서비스를 일시적으로 사용할 수 없습니다."
	msgTranslateFailed      = "요약 처리 중 오류가 발생했습니다."
)

// DashboardHandler serves every dashboard endpoint. Each GET follows the
// same boundary: fresh cache or live aggregation, stale cache on failure,
// localized 500 only when both are empty.
type DashboardHandler struct {
	log       *logger.Logger
	markets   *usecase.MarketAggregator
	calendar  *usecase.CalendarAggregator
	news      *usecase.NewsAggregator
	sentiment *usecase.SentimentAggregator
	summary   *usecase.SummaryAggregator
	translate *usecase.TranslateUsecase
}

func NewDashboardHandler(
	log *logger.Logger,
	markets *usecase.MarketAggregator,
	calendar *usecase.CalendarAggregator,
	news *usecase.NewsAggregator,
	sentiment *usecase.SentimentAggregator,
	summary *usecase.SummaryAggregator,
	translate *usecase.TranslateUsecase,
) *DashboardHandler {
	return &DashboardHandler{
		log:       log,
		markets:   markets,
		calendar:  calendar,
		news:      news,
		sentiment: sentiment,
		summary:   summary,
		translate: translate,
	}
}

// RegisterRoutes mounts the dashboard API.
func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/markets", h.Markets)
	g.GET("/calendar", h.Calendar)
	g.GET("/news", h.News)
	g.GET("/fear-greed", h.FearGreed)
	g.GET("/summary", h.Summary)
	g.GET("/status", h.Status)
	g.POST("/news/summarize", h.Summarize)
}

// Markets serves GET /api/markets.
func (h *DashboardHandler) Markets(c echo.Context) error {
	ctx := c.Request().Context()

	res, err := h.markets.Get(ctx)
	if err != nil {
		if stale, ok := h.markets.Stale(ctx); ok {
			return envelope(c, stale, true)
		}
		h.log.Error("markets request failed", logger.Error(err))
		return errorBody(c, msgMarketsUnavailable)
	}
	return envelope(c, res.Data, false)
}

// Calendar serves GET /api/calendar?tab=this_week|this_month|next_month.
func (h *DashboardHandler) Calendar(c echo.Context) error {
	ctx := c.Request().Context()

	tab := models.CalendarTab(c.QueryParam("tab"))
	if tab == "" {
		tab = models.TabThisWeek
	}
	from, to, err := h.calendar.RangeFor(tab)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorBody{Error: msgMissingParams})
	}

	res, err := h.calendar.Get(ctx, from, to)
	if err != nil {
		if stale, ok := h.calendar.Stale(ctx, from, to); ok {
			return envelope(c, stale, true)
		}
		h.log.Error("calendar request failed", logger.Error(err))
		return errorBody(c, msgCalendarUnavailable)
	}
	return envelope(c, res.Data, false)
}

// News serves GET /api/news.
func (h *DashboardHandler) News(c echo.Context) error {
	ctx := c.Request().Context()

	res, err := h.news.Get(ctx)
	if err != nil {
		if stale, ok := h.news.Stale(ctx); ok {
			return envelope(c, stale, true)
		}
		h.log.Error("news request failed", logger.Error(err))
		return errorBody(c, msgNewsUnavailable)
	}
	return envelope(c, res.Data, false)
}

// FearGreed serves GET /api/fear-greed.
func (h *DashboardHandler) FearGreed(c echo.Context) error {
	ctx := c.Request().Context()

	reading, err := h.sentiment.Get(ctx)
	if err != nil {
		if stale, ok := h.sentiment.Stale(ctx); ok {
			return envelope(c, stale, true)
		}
		h.log.Error("sentiment request failed", logger.Error(err))
		return errorBody(c, msgSentimentUnavailable)
	}
	return envelope(c, reading, false)
}

// Summary serves GET /api/summary.
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.summary.Get(ctx)
	if err != nil {
		if stale, ok := h.summary.Stale(ctx); ok {
			return envelope(c, stale, true)
		}
		h.log.Error("summary request failed", logger.Error(err))
		return errorBody(c, msgSummaryUnavailable)
	}
	return envelope(c, summary, false)
}

// Status serves GET /api/status. Pure computation, never cached.
func (h *DashboardHandler) Status(c echo.Context) error {
	return envelope(c, service.AllMarketStatuses(time.Now()), false)
}

// Summarize serves POST /api/news/summarize.
func (h *DashboardHandler) Summarize(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.TranslateRequest
	if details := xhttp.ReadAndValidateRequest(c, &req); details != nil {
		return c.JSON(http.StatusBadRequest, models.TranslateResponse{
			Success: false,
			Error:   msgMissingParams,
		})
	}

	result, err := h.translate.Translate(ctx, req)
	switch err {
	case nil:
		return c.JSON(http.StatusOK, models.TranslateResponse{Success: true, Data: &result})
	case usecase.ErrNoTranslator:
		return c.JSON(http.StatusServiceUnavailable, models.TranslateResponse{
			Success: false,
			Error:   msgNoTranslatorKeys,
		})
	case usecase.ErrTranslateUnavailable:
		return c.JSON(http.StatusServiceUnavailable, models.TranslateResponse{
			Success: false,
			Error:   msgTranslateUnavailable,
		})
	default:
		h.log.Error("summarize request failed", logger.Error(err))
		return c.JSON(http.StatusInternalServerError, models.TranslateResponse{
			Success: false,
			Error:   msgTranslateFailed,
		})
	}
}

func envelope[T any](c echo.Context, data T, stale bool) error {
	return c.JSON(http.StatusOK, models.Envelope[T]{
		Data:      data,
		UpdatedAt: time.Now().UTC(),
		Stale:     stale,
	})
}

func errorBody(c echo.Context, msg string) error {
	return c.JSON(http.StatusInternalServerError, models.ErrorBody{Error: msg})
}
