package api

import (
	"context"
	"net/http"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/service/metrics"

	"github.com/labstack/echo/v4"
)

type MediaProvider interface {
	Photos(ctx context.Context) []models.Photo
	News(ctx context.Context) []models.NewsCard
}

// MediaHandler serves the scraped gallery and news cards. Both routes
// always answer 200; the usecase substitutes fallbacks on failure.
type MediaHandler struct {
	uc MediaProvider
}

func NewMediaHandler(uc MediaProvider) *MediaHandler {
	metrics.Register()
	return &MediaHandler{uc: uc}
}

func (h *MediaHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/photos", h.Photos)
	e.GET("/news", h.News)
}

func (h *MediaHandler) Photos(c echo.Context) error {
	defer observe("photos", time.Now())
	return c.JSON(http.StatusOK, models.PhotosResponse{Photos: h.uc.Photos(c.Request().Context())})
}

func (h *MediaHandler) News(c echo.Context) error {
	defer observe("news", time.Now())
	return c.JSON(http.StatusOK, models.NewsResponse{News: h.uc.News(c.Request().Context())})
}

func observe(endpoint string, start time.Time) {
	metrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
