package usecase

import (
	"context"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	"StockPulse/internal/services/indicators"
	xlogger "StockPulse/pkg/logger"
)

type TechnicalSummarizer struct {
	history repository.HistoryProvider
	cfg     DecisionConfig
	logger  *xlogger.Logger
}

func NewTechnicalSummarizer(history repository.HistoryProvider, cfg DecisionConfig, logger *xlogger.Logger) *TechnicalSummarizer {
	return &TechnicalSummarizer{history: history, cfg: cfg, logger: logger}
}

// Analyze reads one year of daily bars and summarizes the last row of the indicator set.
func (s *TechnicalSummarizer) Analyze(ctx context.Context, ticker string) models.Result[models.TechnicalSummary] {
	bars, err := s.history.History(ctx, ticker, repository.Period1y)
	if err != nil {
		return models.Fail[models.TechnicalSummary](&models.ProviderError{Op: "history", Err: err})
	}
	if len(bars) == 0 {
		return models.Fail[models.TechnicalSummary](&models.NoDataError{Ticker: ticker})
	}

	snap := indicators.Compute(models.Closes(bars))
	s.logger.Debug("indicators computed",
		xlogger.String("ticker", ticker),
		xlogger.Int("bars", len(bars)),
		xlogger.Any("values", snap.Values()),
	)

	return models.Ok(models.TechnicalSummary{
		CurrentPrice: snap.Close,
		RSI:          snap.RSI,
		RSISignal:    ClassifyRSI(snap.RSI, s.cfg.RSIOverbought, s.cfg.RSIOversold),
		MACD:         snap.MACD,
		MACDSignal:   snap.MACDSignal,
		Trend:        ClassifyTrend(snap.SMA50, snap.SMA200),
		Support:      snap.BBLower,
		Resistance:   snap.BBUpper,
	})
}

// ClassifyRSI uses strict thresholds; NaN is Neutral.
func ClassifyRSI(rsi, overbought, oversold float64) models.RSISignal {
	switch {
	case rsi > overbought:
		return models.RSIOverbought
	case rsi < oversold:
		return models.RSIOversold
	default:
		return models.RSINeutral
	}
}

// ClassifyTrend compares SMA-50 to SMA-200; equal or NaN is Neutral.
func ClassifyTrend(sma50, sma200 float64) models.Trend {
	switch {
	case sma50 > sma200:
		return models.TrendBullish
	case sma50 < sma200:
		return models.TrendBearish
	default:
		return models.TrendNeutral
	}
}
