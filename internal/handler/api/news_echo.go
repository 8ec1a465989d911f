package api

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	models "trendcheck/internal/domain/models"
	domrepo "trendcheck/internal/domain/repository"
	icache "trendcheck/internal/service/cache"
	"trendcheck/internal/usecase"
	xhttp "trendcheck/pkg/http"
	xlogger "trendcheck/pkg/logger"
)

const newsCacheTTL = 15 * time.Second

// NewsEchoHandler serves the article endpoints: listing the cache window,
// enumerating sources and triggering an on-demand poll.
type NewsEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.Aggregator
	store  domrepo.ArticleStore
	cache  icache.BytesCache
}

func NewNewsEchoHandler(logger *xlogger.Logger, agg *usecase.Aggregator, store domrepo.ArticleStore, cache icache.BytesCache) *NewsEchoHandler {
	return &NewsEchoHandler{logger: logger, agg: agg, store: store, cache: cache}
}

func (h *NewsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/news")
	g.GET("", h.List)
	g.GET("/sources", h.Sources)
	g.POST("/poll", h.Poll)
}

func (h *NewsEchoHandler) List(c echo.Context) error {
	req := &models.NewsListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	query := &models.NewsQuery{Search: req.Q, Tickers: splitTickers(req.Tickers), Limit: req.Limit}

	cacheKey := newsCacheKey(query)
	if h.cache != nil {
		if b, ok, _ := h.cache.GetBytes(cacheKey); ok {
			return xhttp.SuccessResponse(c, json.RawMessage(b))
		}
	}

	articles, err := h.store.Query(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("news query error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	if h.cache != nil {
		if b, err := json.Marshal(articles); err == nil {
			_ = h.cache.SetBytes(cacheKey, b, newsCacheTTL)
		}
	}
	return xhttp.SuccessResponse(c, articles)
}

func (h *NewsEchoHandler) Sources(c echo.Context) error {
	sources, err := h.store.Sources(c.Request().Context())
	if err != nil {
		h.logger.Error("news sources error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	if sources == nil {
		sources = []string{}
	}
	return xhttp.SuccessResponse(c, sources)
}

func (h *NewsEchoHandler) Poll(c echo.Context) error {
	req := &models.PollRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	query := &models.NewsQuery{Search: req.Q, Tickers: splitTickers(req.Tickers), Limit: req.Limit}

	n, err := h.agg.PollAll(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("poll error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]int{"fetched": n})
}

// splitTickers flattens repeated and comma-separated ticker params.
func splitTickers(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, t := range strings.Split(r, ",") {
			if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

func newsCacheKey(q *models.NewsQuery) string {
	return "news:" + q.Search + ":" + strings.Join(q.Tickers, ",") + ":" + strconv.Itoa(q.ClampedLimit())
}
