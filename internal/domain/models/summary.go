package models

import (
	"encoding/json"
	"math"
)

type Trend string

const (
	TrendBullish Trend = "Bullish"
	TrendBearish Trend = "Bearish"
	TrendNeutral Trend = "Neutral"
)

type RSISignal string

const (
	RSIOverbought RSISignal = "Overbought"
	RSIOversold   RSISignal = "Oversold"
	RSINeutral    RSISignal = "Neutral"
)

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negative"
)

// RecommendationNone is used when the provider has no analyst consensus.
const RecommendationNone = "NONE"

// TechnicalSummary is the last-row reading of the indicator set over daily history.
// Indicators that could not be computed hold NaN and serialize as null.
type TechnicalSummary struct {
	CurrentPrice float64   `json:"current_price"`
	RSI          float64   `json:"rsi"`
	RSISignal    RSISignal `json:"rsi_signal"`
	MACD         float64   `json:"macd"`
	MACDSignal   float64   `json:"macd_signal"`
	Trend        Trend     `json:"trend"`
	Support      float64   `json:"support"`
	Resistance   float64   `json:"resistance"`
}

func (t TechnicalSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CurrentPrice *float64  `json:"current_price"`
		RSI          *float64  `json:"rsi"`
		RSISignal    RSISignal `json:"rsi_signal"`
		MACD         *float64  `json:"macd"`
		MACDSignal   *float64  `json:"macd_signal"`
		Trend        Trend     `json:"trend"`
		Support      *float64  `json:"support"`
		Resistance   *float64  `json:"resistance"`
	}{
		CurrentPrice: finite(t.CurrentPrice),
		RSI:          finite(t.RSI),
		RSISignal:    t.RSISignal,
		MACD:         finite(t.MACD),
		MACDSignal:   finite(t.MACDSignal),
		Trend:        t.Trend,
		Support:      finite(t.Support),
		Resistance:   finite(t.Resistance),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type FundamentalSummary struct {
	CompanyName    string   `json:"company_name"`
	MarketCap      *float64 `json:"market_cap"`
	PERatio        *float64 `json:"pe_ratio"`
	ForwardPE      *float64 `json:"forward_pe"`
	PEGRatio       *float64 `json:"peg_ratio"`
	PriceToBook    *float64 `json:"price_to_book"`
	ProfitMargins  *float64 `json:"profit_margins"`
	RevenueGrowth  *float64 `json:"revenue_growth"`
	Sector         *string  `json:"sector"`
	Industry       *string  `json:"industry"`
	Recommendation string   `json:"recommendation"`
}

type SentimentSummary struct {
	Score     float64        `json:"sentiment_score"`
	Label     SentimentLabel `json:"sentiment_label"`
	NewsCount int            `json:"news_count"`
	Headlines []string       `json:"headlines"`
}

// NeutralSentiment is the summary for a ticker with no headlines.
func NeutralSentiment() SentimentSummary {
	return SentimentSummary{Label: SentimentNeutral, Headlines: []string{}}
}
