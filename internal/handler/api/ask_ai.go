package api

import (
	"context"
	"net/http"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/service/metrics"
	"StockPulse/internal/service/ratelimit"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

type Asker interface {
	Ask(ctx context.Context, req models.AskAIRequest) models.AskAIResponse
}

// AskAIHandler forwards chat prompts. Upstream failures are reported inside
// the response text with a 200, so only validation and throttling are errors.
type AskAIHandler struct {
	logger *xlogger.Logger
	uc     Asker
	rl     *ratelimit.Limiter
}

func NewAskAIHandler(logger *xlogger.Logger, uc Asker, rl *ratelimit.Limiter) *AskAIHandler {
	metrics.Register()
	return &AskAIHandler{logger: logger, uc: uc, rl: rl}
}

func (h *AskAIHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/ask-ai", h.Ask)
}

func (h *AskAIHandler) Ask(c echo.Context) error {
	const endpoint = "ask_ai"
	start := time.Now()
	defer func() { metrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	if h.rl != nil && !h.rl.Allow(c.RealIP()) {
		metrics.RateLimited.WithLabelValues(endpoint).Inc()
		h.logger.Warn("ask-ai rate limited", xlogger.String("remote", c.RealIP()))
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("Too many requests, slow down"))
	}

	req := &models.AskAIRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return c.JSON(http.StatusOK, h.uc.Ask(c.Request().Context(), *req))
}
