package usecase

import (
	"context"
	"errors"
	"sync"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
)

var errUpstream = errors.New("upstream unavailable")

type fakeHistory struct {
	mu    sync.Mutex
	bars  map[string][]models.Bar
	err   map[string]error
	calls []string
}

func (f *fakeHistory) History(_ context.Context, ticker string, _ repository.Period) ([]models.Bar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, ticker)
	if err := f.err[ticker]; err != nil {
		return nil, err
	}
	return f.bars[ticker], nil
}

type fakeInfo struct {
	info *models.CompanyInfo
	err  error
}

func (f *fakeInfo) Info(context.Context, string) (*models.CompanyInfo, error) {
	return f.info, f.err
}

type fakeNews struct {
	items []models.NewsItem
	err   error
}

func (f *fakeNews) News(context.Context, string) ([]models.NewsItem, error) {
	return f.items, f.err
}

// mapScorer looks polarity up by exact title.
type mapScorer struct {
	scores map[string]float64
	err    error
}

func (m *mapScorer) Polarity(_ context.Context, text string) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.scores[text], nil
}

type fakeMetrics struct {
	mu        sync.Mutex
	errors    []string
	partial   []string
	decisions []string
}

func (m *fakeMetrics) RecordError(kind string) {
	m.mu.Lock()
	m.errors = append(m.errors, kind)
	m.mu.Unlock()
}

func (m *fakeMetrics) RecordLatency(string, float64) {}

func (m *fakeMetrics) RecordDecision(decision, confidence string) {
	m.mu.Lock()
	m.decisions = append(m.decisions, decision+"/"+confidence)
	m.mu.Unlock()
}

func (m *fakeMetrics) RecordPartial(component string) {
	m.mu.Lock()
	m.partial = append(m.partial, component)
	m.mu.Unlock()
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.DecisionEvent
	err    error
}

func (p *fakePublisher) PublishDecision(_ context.Context, ev models.DecisionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

// ramp builds n daily bars with closes start, start+step, ...
func ramp(n int, start, step float64) []models.Bar {
	bars := make([]models.Bar, n)
	for i := range bars {
		c := start + step*float64(i)
		bars[i] = models.Bar{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
	}
	return bars
}

func ptr[T any](v T) *T { return &v }
