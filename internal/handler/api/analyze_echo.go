package api

import (
	"github.com/labstack/echo/v4"

	models "trendcheck/internal/domain/models"
	"trendcheck/internal/service/ratelimit"
	"trendcheck/internal/usecase"
	xhttp "trendcheck/pkg/http"
	xlogger "trendcheck/pkg/logger"
)

// per-client submit allowance: small burst, slow refill
const (
	submitBurst  = 5.0
	submitRefill = 1.0
)

// AnalyzeEchoHandler serves the async analysis endpoints.
type AnalyzeEchoHandler struct {
	logger *xlogger.Logger
	sub    *usecase.Submitter
	rl     *ratelimit.Limiter
}

func NewAnalyzeEchoHandler(logger *xlogger.Logger, sub *usecase.Submitter) *AnalyzeEchoHandler {
	return &AnalyzeEchoHandler{logger: logger, sub: sub, rl: ratelimit.New()}
}

func (h *AnalyzeEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/analyze")
	g.POST("/submit", h.Submit)
	g.GET("/status/:id", h.Status)
	g.GET("/result/:id", h.Result)
	g.GET("/requests", h.Requests)
}

func (h *AnalyzeEchoHandler) Submit(c echo.Context) error {
	if !h.rl.Allow(c.RealIP()+":submit", submitBurst, submitRefill) {
		h.logger.Warn("submit rate limited", xlogger.String("remote", c.RealIP()))
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("submit rate exceeded"))
	}

	req := &models.SubmitRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	created := h.sub.Submit(req.User, req.Text, req.Engine, req.Translate)
	h.logger.Info("analysis submitted",
		xlogger.String("request_id", created.ID),
		xlogger.String("engine", created.Engine))
	return xhttp.CreatedResponse(c, map[string]string{"request_id": created.ID})
}

func (h *AnalyzeEchoHandler) Status(c echo.Context) error {
	req, ok := h.sub.Request(c.Param("id"))
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("request"))
	}
	return xhttp.SuccessResponse(c, map[string]any{
		"request_id": req.ID,
		"status":     req.Status,
		"error":      req.Error,
	})
}

// Result returns the analysis outcome; before the job completes it answers
// 400 with the current status so pollers can tell "not ready" apart from
// "no such request".
func (h *AnalyzeEchoHandler) Result(c echo.Context) error {
	req, ok := h.sub.Request(c.Param("id"))
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("request"))
	}
	if req.Status != models.StatusCompleted {
		return xhttp.BadRequestResponse(c, map[string]any{
			"request_id": req.ID,
			"status":     req.Status,
			"error":      req.Error,
		})
	}
	return xhttp.SuccessResponse(c, req.Result)
}

func (h *AnalyzeEchoHandler) Requests(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.sub.Requests())
}
