package repository

import (
	"context"

	"StockPulse/internal/domain/models"
)

type HistoryProvider interface {
	History(ctx context.Context, ticker string, period Period) ([]models.Bar, error)
}

type InfoProvider interface {
	Info(ctx context.Context, ticker string) (*models.CompanyInfo, error)
}

type NewsProvider interface {
	News(ctx context.Context, ticker string) ([]models.NewsItem, error)
}

// MarketData is the full market-data provider surface.
type MarketData interface {
	HistoryProvider
	InfoProvider
	NewsProvider
}

// PolarityScorer maps text to a sentiment value in [-1, 1].
type PolarityScorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

type DecisionPublisher interface {
	PublishDecision(ctx context.Context, ev models.DecisionEvent) error
	Close() error
}

type Metrics interface {
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordDecision(decision, confidence string)
	RecordPartial(component string)
}
