package yahoo

import (
	"context"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	"StockPulse/pkg/cache"
)

// Source combines independent history, info and news providers.
type Source struct {
	repository.HistoryProvider
	repository.InfoProvider
	repository.NewsProvider
}

// CachedMarketData memoizes provider reads for ttl.
type CachedMarketData struct {
	inner repository.MarketData
	cache cache.Service
	ttl   time.Duration
}

func NewCachedMarketData(inner repository.MarketData, c cache.Service, ttl time.Duration) *CachedMarketData {
	return &CachedMarketData{inner: inner, cache: c, ttl: ttl}
}

func (m *CachedMarketData) History(ctx context.Context, ticker string, period repository.Period) ([]models.Bar, error) {
	key := cache.GenerateKeyWithParams("history", ticker, period)
	return cache.GetOrLoad(ctx, m.cache, key, m.ttl, func(ctx context.Context) ([]models.Bar, error) {
		return m.inner.History(ctx, ticker, period)
	})
}

func (m *CachedMarketData) Info(ctx context.Context, ticker string) (*models.CompanyInfo, error) {
	return cache.GetOrLoad(ctx, m.cache, cache.GenerateKey("info", ticker), m.ttl, func(ctx context.Context) (*models.CompanyInfo, error) {
		return m.inner.Info(ctx, ticker)
	})
}

func (m *CachedMarketData) News(ctx context.Context, ticker string) ([]models.NewsItem, error) {
	return cache.GetOrLoad(ctx, m.cache, cache.GenerateKey("news", ticker), m.ttl, func(ctx context.Context) ([]models.NewsItem, error) {
		return m.inner.News(ctx, ticker)
	})
}
