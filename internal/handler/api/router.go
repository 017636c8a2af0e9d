package api

import (
	"net/http"

	"StockPulse/internal/domain/models"
	xhttp "StockPulse/pkg/http"

	"github.com/labstack/echo/v4"
)

// Router mounts every route group on one Echo instance.
type Router struct {
	handlers []xhttp.Handler
}

var _ xhttp.Handler = (*Router)(nil)

func NewRouter(analysis *AnalysisHandler, askAI *AskAIHandler, media *MediaHandler) *Router {
	return &Router{handlers: []xhttp.Handler{analysis, askAI, media}}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", root)
	e.GET("/healthz", healthz)
	for _, h := range r.handlers {
		h.RegisterRoutes(e)
	}
}

func root(c echo.Context) error {
	return c.JSON(http.StatusOK, models.StatusResponse{Message: "StockPulse API is running"})
}

func healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
