package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	xlogger "StockPulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analysisFixture struct {
	history *fakeHistory
	info    *fakeInfo
	news    *fakeNews
	scorer  *mapScorer
	metrics *fakeMetrics
	pub     *fakePublisher
}

func newFixture() *analysisFixture {
	return &analysisFixture{
		history: &fakeHistory{bars: map[string][]models.Bar{"INFY.NS": ramp(250, 100, 1)}},
		info:    &fakeInfo{info: &models.CompanyInfo{LongName: "Infosys", RecommendationKey: "buy"}},
		news:    &fakeNews{items: []models.NewsItem{{Title: "good"}, {Title: "great"}}},
		scorer:  &mapScorer{scores: map[string]float64{"good": 0.5, "great": 0.7}},
		metrics: &fakeMetrics{},
		pub:     &fakePublisher{},
	}
}

func (f *analysisFixture) useCase() *AnalysisUseCase {
	cfg := DefaultDecisionConfig()
	uc := NewAnalysisUseCase(AnalysisDeps{
		Resolver:    NewTickerResolver(f.history, []string{".NS", ".BO"}, xlogger.Nop()),
		Technical:   NewTechnicalSummarizer(f.history, cfg, xlogger.Nop()),
		Fundamental: NewFundamentalSummarizer(f.info),
		Sentiment:   NewSentimentSummarizer(f.news, f.scorer, cfg),
		Engine:      NewDecisionEngine(cfg),
		Publisher:   f.pub,
		Metrics:     f.metrics,
		Logger:      xlogger.Nop(),
		Timeout:     time.Second,
	})
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestAnalyzeFullReport(t *testing.T) {
	f := newFixture()
	r, err := f.useCase().Analyze(context.Background(), "infy")
	require.NoError(t, err)

	assert.Equal(t, "infy", r.Requested)
	assert.Equal(t, "INFY.NS", r.Ticker)
	assert.Nil(t, r.Warnings)
	assert.False(t, r.Decision.Partial)

	// Bullish +2, Overbought -1, BUY +2, Positive +1
	assert.Equal(t, 4, r.Decision.Score)
	assert.Equal(t, models.DecisionBuy, r.Decision.Decision)
	assert.Equal(t, models.ConfidenceHigh, r.Decision.Confidence)
	assert.Len(t, r.Decision.Explanation, 4)

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, "INFY.NS", f.pub.events[0].Ticker)
	assert.Equal(t, 4, f.pub.events[0].Score)
	assert.Equal(t, []string{"BUY/High"}, f.metrics.decisions)
}

func TestAnalyzeUnresolvedTicker(t *testing.T) {
	f := newFixture()
	_, err := f.useCase().Analyze(context.Background(), "ZZZZ")
	var inv *models.InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "ZZZZ", inv.Symbol)
	assert.Empty(t, f.pub.events)
}

func TestAnalyzePartialFailureScoresNeutral(t *testing.T) {
	f := newFixture()
	f.info.err = errUpstream
	f.news.err = errUpstream

	r, err := f.useCase().Analyze(context.Background(), "INFY")
	require.NoError(t, err)

	assert.True(t, r.Decision.Partial)
	assert.Equal(t, []string{models.ComponentFundamental, models.ComponentSentiment}, r.Decision.Missing)
	assert.Contains(t, r.Warnings, models.ComponentFundamental)
	assert.Contains(t, r.Warnings, models.ComponentSentiment)
	assert.False(t, r.Fundamental.OK())

	// only the technical contribution: Bullish +2, Overbought -1
	assert.Equal(t, 1, r.Decision.Score)
	assert.Equal(t, models.DecisionBuy, r.Decision.Decision)
	assert.Equal(t, models.ConfidenceMedium, r.Decision.Confidence)
	assert.ElementsMatch(t, []string{models.ComponentFundamental, models.ComponentSentiment}, f.metrics.partial)
}

func TestAnalyzeTotalFailure(t *testing.T) {
	f := newFixture()
	f.info.err = errUpstream
	f.news.err = errUpstream
	uc := f.useCase()
	// resolve with the bars present, then fail the 1y fetch
	uc.technical = NewTechnicalSummarizer(&fakeHistory{err: map[string]error{"INFY.NS": errUpstream}}, DefaultDecisionConfig(), xlogger.Nop())

	_, err := uc.Analyze(context.Background(), "INFY")
	var pe *models.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.ErrorIs(t, err, errUpstream)
	assert.Empty(t, f.pub.events)
}

func TestAnalyzePublishFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.pub.err = errors.New("broker down")

	r, err := f.useCase().Analyze(context.Background(), "INFY")
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Contains(t, f.metrics.errors, "publish")
}

func TestAnalyzeWithoutPublisher(t *testing.T) {
	f := newFixture()
	uc := f.useCase()
	uc.publisher = nil
	_, err := uc.Analyze(context.Background(), "INFY")
	require.NoError(t, err)
}

func TestAnalyzeCancelledBeforeResolve(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.useCase().Analyze(ctx, "infy")
	assert.ErrorIs(t, err, context.Canceled)
	var inv *models.InvalidInputError
	assert.False(t, errors.As(err, &inv))
	assert.Empty(t, f.pub.events)
}

// barrier blocks each caller until n callers have arrived or ctx ends.
type barrier struct {
	arrived chan struct{}
	n       int
}

func newBarrier(n int) *barrier { return &barrier{arrived: make(chan struct{}, n), n: n} }

func (b *barrier) wait(ctx context.Context) error {
	b.arrived <- struct{}{}
	for len(b.arrived) < b.n {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
	return nil
}

type barrierInfo struct {
	b    *barrier
	info *models.CompanyInfo
}

func (f *barrierInfo) Info(ctx context.Context, _ string) (*models.CompanyInfo, error) {
	if err := f.b.wait(ctx); err != nil {
		return nil, err
	}
	return f.info, nil
}

type barrierNews struct {
	b     *barrier
	items []models.NewsItem
}

func (f *barrierNews) News(ctx context.Context, _ string) ([]models.NewsItem, error) {
	if err := f.b.wait(ctx); err != nil {
		return nil, err
	}
	return f.items, nil
}

func TestAnalyzeRunsSummarizersConcurrently(t *testing.T) {
	f := newFixture()
	b := newBarrier(2)
	cfg := DefaultDecisionConfig()
	uc := NewAnalysisUseCase(AnalysisDeps{
		Resolver:    NewTickerResolver(f.history, nil, xlogger.Nop()),
		Technical:   NewTechnicalSummarizer(f.history, cfg, xlogger.Nop()),
		Fundamental: NewFundamentalSummarizer(&barrierInfo{b: b, info: f.info.info}),
		Sentiment:   NewSentimentSummarizer(&barrierNews{b: b, items: f.news.items}, f.scorer, cfg),
		Engine:      NewDecisionEngine(cfg),
		Metrics:     f.metrics,
		Logger:      xlogger.Nop(),
		Timeout:     2 * time.Second,
	})

	r, err := uc.Analyze(context.Background(), "INFY.NS")
	require.NoError(t, err)
	assert.Nil(t, r.Warnings)
	assert.False(t, r.Decision.Partial)
	assert.Equal(t, "BUY", r.Fundamental.ValueOr(models.FundamentalSummary{}).Recommendation)
	assert.Equal(t, 2, r.Sentiment.ValueOr(models.SentimentSummary{}).NewsCount)
}
