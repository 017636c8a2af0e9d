package models

import "time"

type DecisionType string

const (
	DecisionBuy  DecisionType = "BUY"
	DecisionHold DecisionType = "HOLD"
	DecisionSell DecisionType = "SELL"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Decision is the scored recommendation. Explanation keeps evaluation order.
type Decision struct {
	Decision    DecisionType `json:"decision"`
	Confidence  Confidence   `json:"confidence"`
	Score       int          `json:"score"`
	Explanation []string     `json:"explanation"`
	Partial     bool         `json:"partial,omitempty"`
	Missing     []string     `json:"missing,omitempty"`
}

// Component names used in reports, warnings and metrics.
const (
	ComponentTechnical   = "technical"
	ComponentFundamental = "fundamental"
	ComponentSentiment   = "sentiment"
)

// AnalysisReport is the full answer for one analyzed ticker.
type AnalysisReport struct {
	Requested   string                     `json:"requested"`
	Ticker      string                     `json:"ticker"`
	Technical   Result[TechnicalSummary]   `json:"technical"`
	Fundamental Result[FundamentalSummary] `json:"fundamental"`
	Sentiment   Result[SentimentSummary]   `json:"sentiment"`
	Decision    Decision                   `json:"decision"`
	Warnings    map[string]string          `json:"warnings,omitempty"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// DecisionEvent is the message published for each completed analysis.
type DecisionEvent struct {
	Ticker     string       `json:"ticker"`
	Decision   DecisionType `json:"decision"`
	Confidence Confidence   `json:"confidence"`
	Score      int          `json:"score"`
	Partial    bool         `json:"partial"`
	Timestamp  time.Time    `json:"timestamp"`
}

func NewDecisionEvent(r *AnalysisReport) DecisionEvent {
	return DecisionEvent{
		Ticker:     r.Ticker,
		Decision:   r.Decision.Decision,
		Confidence: r.Decision.Confidence,
		Score:      r.Decision.Score,
		Partial:    r.Decision.Partial,
		Timestamp:  r.GeneratedAt,
	}
}
