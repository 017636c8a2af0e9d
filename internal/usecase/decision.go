package usecase

import (
	"fmt"
	"strings"

	"StockPulse/internal/domain/models"
	"StockPulse/pkg/config"
)

// Weights are the points each signal adds to or subtracts from the score.
type Weights struct {
	Trend     int
	RSI       int
	Analyst   int
	Sentiment int
}

// Bands are the inclusive score cut-offs, checked in order
// StrongBuy, Buy, StrongSell, Sell; anything else is HOLD.
type Bands struct {
	StrongBuy  int
	Buy        int
	StrongSell int
	Sell       int
}

// DecisionConfig holds every tunable of the scoring pipeline.
type DecisionConfig struct {
	Weights Weights
	Bands   Bands

	RSIOverbought float64
	RSIOversold   float64

	PositivePolarity float64
	NegativePolarity float64
}

// DefaultDecisionConfig returns the stock weights, bands and thresholds.
func DefaultDecisionConfig() DecisionConfig {
	return DecisionConfig{
		Weights:          Weights{Trend: 2, RSI: 1, Analyst: 2, Sentiment: 1},
		Bands:            Bands{StrongBuy: 3, Buy: 1, StrongSell: -3, Sell: -1},
		RSIOverbought:    70,
		RSIOversold:      30,
		PositivePolarity: 0.1,
		NegativePolarity: -0.1,
	}
}

// NewDecisionConfig maps the validated signals section of the app config.
func NewDecisionConfig(sc config.SignalsConfig) DecisionConfig {
	return DecisionConfig{
		Weights: Weights{
			Trend:     sc.Weights.Trend,
			RSI:       sc.Weights.RSI,
			Analyst:   sc.Weights.Analyst,
			Sentiment: sc.Weights.Sentiment,
		},
		Bands: Bands{
			StrongBuy:  sc.Bands.StrongBuy,
			Buy:        sc.Bands.Buy,
			StrongSell: sc.Bands.StrongSell,
			Sell:       sc.Bands.Sell,
		},
		RSIOverbought:    sc.RSI.Overbought,
		RSIOversold:      sc.RSI.Oversold,
		PositivePolarity: sc.Polarity.Positive,
		NegativePolarity: sc.Polarity.Negative,
	}
}

// DecisionEngine turns three summaries into a scored recommendation.
// It holds no state besides its config and is safe for concurrent use.
type DecisionEngine struct {
	cfg DecisionConfig
}

// NewDecisionEngine creates an engine scoring with cfg.
func NewDecisionEngine(cfg DecisionConfig) *DecisionEngine {
	return &DecisionEngine{cfg: cfg}
}

func (e *DecisionEngine) MakeDecision(t models.TechnicalSummary, f models.FundamentalSummary, s models.SentimentSummary) models.Decision {
	w := e.cfg.Weights
	score := 0
	reasons := []string{}

	switch t.Trend {
	case models.TrendBullish:
		score += w.Trend
		reasons = append(reasons, "Technical Trend is Bullish")
	case models.TrendBearish:
		score -= w.Trend
		reasons = append(reasons, "Technical Trend is Bearish")
	}

	switch t.RSISignal {
	case models.RSIOversold:
		score += w.RSI
		reasons = append(reasons, "RSI indicates Oversold (Potential Buy)")
	case models.RSIOverbought:
		score -= w.RSI
		reasons = append(reasons, "RSI indicates Overbought (Potential Sell)")
	}

	rec := f.Recommendation
	switch {
	case strings.Contains(rec, "BUY"):
		score += w.Analyst
		reasons = append(reasons, fmt.Sprintf("Analyst Recommendation is %s", rec))
	case strings.Contains(rec, "SELL"):
		score -= w.Analyst
		reasons = append(reasons, fmt.Sprintf("Analyst Recommendation is %s", rec))
	}

	switch s.Label {
	case models.SentimentPositive:
		score += w.Sentiment
		reasons = append(reasons, "Market Sentiment is Positive")
	case models.SentimentNegative:
		score -= w.Sentiment
		reasons = append(reasons, "Market Sentiment is Negative")
	}

	decision, confidence := e.Band(score)
	return models.Decision{
		Decision:    decision,
		Confidence:  confidence,
		Score:       score,
		Explanation: reasons,
	}
}

// Band maps a score to its decision and confidence.
func (e *DecisionEngine) Band(score int) (models.DecisionType, models.Confidence) {
	b := e.cfg.Bands
	switch {
	case score >= b.StrongBuy:
		return models.DecisionBuy, models.ConfidenceHigh
	case score >= b.Buy:
		return models.DecisionBuy, models.ConfidenceMedium
	case score <= b.StrongSell:
		return models.DecisionSell, models.ConfidenceHigh
	case score <= b.Sell:
		return models.DecisionSell, models.ConfidenceMedium
	default:
		return models.DecisionHold, models.ConfidenceLow
	}
}
