package service

import (
	"context"

	"StockPulse/internal/domain/models"
)

// ChatGateway sends a prompt to a named text-generation provider.
type ChatGateway interface {
	Ask(ctx context.Context, req ChatRequest) (string, error)
}

type ChatRequest struct {
	Provider string
	Prompt   string
	APIKey   string
	Model    string
}

// PhotoSource scrapes gallery images.
type PhotoSource interface {
	Photos(ctx context.Context) ([]models.Photo, error)
}

// NewsSource scrapes headline cards.
type NewsSource interface {
	Cards(ctx context.Context, limit int) ([]models.NewsCard, error)
}
