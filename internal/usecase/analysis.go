package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	xlogger "StockPulse/pkg/logger"
)

const publishTimeout = 2 * time.Second

// AnalysisUseCase resolves a symbol, runs the three summarizers concurrently
// and scores them.
type AnalysisUseCase struct {
	resolver    *TickerResolver
	technical   *TechnicalSummarizer
	fundamental *FundamentalSummarizer
	sentiment   *SentimentSummarizer
	engine      *DecisionEngine

	publisher repository.DecisionPublisher
	metrics   repository.Metrics
	logger    *xlogger.Logger
	timeout   time.Duration
	now       func() time.Time
}

type AnalysisDeps struct {
	Resolver    *TickerResolver
	Technical   *TechnicalSummarizer
	Fundamental *FundamentalSummarizer
	Sentiment   *SentimentSummarizer
	Engine      *DecisionEngine
	// Publisher is optional.
	Publisher repository.DecisionPublisher
	Metrics   repository.Metrics
	Logger    *xlogger.Logger
	Timeout   time.Duration
}

func NewAnalysisUseCase(d AnalysisDeps) *AnalysisUseCase {
	uc := &AnalysisUseCase{
		resolver:    d.Resolver,
		technical:   d.Technical,
		fundamental: d.Fundamental,
		sentiment:   d.Sentiment,
		engine:      d.Engine,
		publisher:   d.Publisher,
		metrics:     d.Metrics,
		logger:      d.Logger,
		timeout:     d.Timeout,
		now:         time.Now,
	}
	if uc.metrics == nil {
		uc.metrics = nopMetrics{}
	}
	if uc.logger == nil {
		uc.logger = xlogger.Nop()
	}
	if uc.timeout <= 0 {
		uc.timeout = 15 * time.Second
	}
	return uc
}

// Analyze returns an InvalidInputError when the symbol has no listed variant
// and a ProviderError when every summarizer failed. A partial failure is
// scored with neutral defaults and noted in Warnings.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, symbol string) (*models.AnalysisReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	ticker, ok := uc.resolver.Resolve(ctx, symbol)
	uc.metrics.RecordLatency("resolve", time.Since(start).Seconds())
	if !ok {
		if err := ctx.Err(); err != nil {
			uc.metrics.RecordError("timeout")
			return nil, fmt.Errorf("resolve %q: %w", symbol, err)
		}
		uc.metrics.RecordError("invalid_ticker")
		return nil, &models.InvalidInputError{Symbol: symbol}
	}

	report := &models.AnalysisReport{
		Requested: symbol,
		Ticker:    ticker,
		Warnings:  map[string]string{},
	}

	type item struct {
		name string
		val  any
	}
	ch := make(chan item, 3)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer uc.observe(models.ComponentTechnical, time.Now())
		ch <- item{models.ComponentTechnical, uc.technical.Analyze(ctx, ticker)}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer uc.observe(models.ComponentFundamental, time.Now())
		ch <- item{models.ComponentFundamental, uc.fundamental.Analyze(ctx, ticker)}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer uc.observe(models.ComponentSentiment, time.Now())
		ch <- item{models.ComponentSentiment, uc.sentiment.Analyze(ctx, ticker)}
	}()
	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		switch v := it.val.(type) {
		case models.Result[models.TechnicalSummary]:
			report.Technical = v
		case models.Result[models.FundamentalSummary]:
			report.Fundamental = v
		case models.Result[models.SentimentSummary]:
			report.Sentiment = v
		}
	}

	var missing []string
	var errs []error
	for _, c := range []struct {
		name string
		err  error
	}{
		{models.ComponentTechnical, report.Technical.Err()},
		{models.ComponentFundamental, report.Fundamental.Err()},
		{models.ComponentSentiment, report.Sentiment.Err()},
	} {
		if c.err == nil {
			continue
		}
		missing = append(missing, c.name)
		errs = append(errs, c.err)
		report.Warnings[c.name] = c.err.Error()
		uc.metrics.RecordError(c.name)
		uc.metrics.RecordPartial(c.name)
		uc.logger.Warn("summarizer failed",
			xlogger.String("ticker", ticker),
			xlogger.String("component", c.name),
			xlogger.Error(c.err),
		)
	}
	if len(missing) == 3 {
		return nil, &models.ProviderError{Op: "analysis", Err: errors.Join(errs...)}
	}

	var zeroTech models.TechnicalSummary
	var zeroFund models.FundamentalSummary
	report.Decision = uc.engine.MakeDecision(
		report.Technical.ValueOr(zeroTech),
		report.Fundamental.ValueOr(zeroFund),
		report.Sentiment.ValueOr(models.NeutralSentiment()),
	)
	if len(missing) > 0 {
		report.Decision.Partial = true
		report.Decision.Missing = missing
	} else {
		report.Warnings = nil
	}
	report.GeneratedAt = uc.now().UTC()

	uc.metrics.RecordDecision(string(report.Decision.Decision), string(report.Decision.Confidence))
	uc.logger.Info("analysis complete",
		xlogger.String("requested", symbol),
		xlogger.String("ticker", ticker),
		xlogger.String("decision", string(report.Decision.Decision)),
		xlogger.Int("score", report.Decision.Score),
		xlogger.Bool("partial", report.Decision.Partial),
		xlogger.Duration("elapsed", time.Since(start)),
	)

	uc.publish(ctx, report)
	return report, nil
}

func (uc *AnalysisUseCase) observe(component string, start time.Time) {
	uc.metrics.RecordLatency(component, time.Since(start).Seconds())
}

// publish is best effort; a broker failure never fails the request.
func (uc *AnalysisUseCase) publish(ctx context.Context, report *models.AnalysisReport) {
	if uc.publisher == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := uc.publisher.PublishDecision(pctx, models.NewDecisionEvent(report)); err != nil {
		uc.metrics.RecordError("publish")
		uc.logger.Warn("publish decision failed", xlogger.String("ticker", report.Ticker), xlogger.Error(err))
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordError(string)            {}
func (nopMetrics) RecordLatency(string, float64) {}
func (nopMetrics) RecordDecision(string, string) {}
func (nopMetrics) RecordPartial(string)          {}
