package models

import "time"

// Bar is one daily OHLCV row.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// CompanyInfo carries provider fundamentals. Absent values are nil.
type CompanyInfo struct {
	Symbol            string
	LongName          string
	MarketCap         *float64
	TrailingPE        *float64
	ForwardPE         *float64
	PEGRatio          *float64
	PriceToBook       *float64
	ProfitMargins     *float64
	RevenueGrowth     *float64
	Sector            *string
	Industry          *string
	RecommendationKey string
}

type NewsItem struct {
	Title       string
	Publisher   string
	Link        string
	PublishedAt time.Time
}

// Closes extracts the close column.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
