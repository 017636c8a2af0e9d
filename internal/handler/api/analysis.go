package api

import (
	"context"
	"errors"
	"net/http"

	"StockPulse/internal/domain/models"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (*models.AnalysisReport, error)
}

// AnalysisHandler serves the ticker analysis routes.
type AnalysisHandler struct {
	logger *xlogger.Logger
	uc     Analyzer
}

func NewAnalysisHandler(logger *xlogger.Logger, uc Analyzer) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analyze", h.Analyze)
	g.GET("/analyze/:symbol", h.Analyze)
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.uc.Analyze(c.Request().Context(), req.Symbol)
	if err != nil {
		return xhttp.AppErrorResponse(c, h.mapError(req.Symbol, err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, report)
}

func (h *AnalysisHandler) mapError(symbol string, err error) error {
	var invalid *models.InvalidInputError
	var provider *models.ProviderError
	switch {
	case errors.As(err, &invalid):
		return xhttp.InvalidTickerError(symbol)
	case errors.As(err, &provider):
		h.logger.Error("analysis provider failure", xlogger.String("symbol", symbol), xlogger.Error(err))
		return xhttp.ProviderFailureError(err)
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Error("analysis timed out", xlogger.String("symbol", symbol))
		return xhttp.NewAppError("ERR_TIMEOUT", "", "Analysis timed out", http.StatusGatewayTimeout).WithError(err)
	default:
		h.logger.Error("analysis usecase error", xlogger.Error(err))
		return xhttp.InternalError("Something went wrong").WithError(err)
	}
}
