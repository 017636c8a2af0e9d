package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultMarshalsErrorShape(t *testing.T) {
	r := Fail[TechnicalSummary](&NoDataError{Ticker: "ZZZ"})
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"No data found for ticker"}`, string(b))

	_, uerr := r.Unwrap()
	var nd *NoDataError
	assert.True(t, errors.As(uerr, &nd))
	assert.Equal(t, "ZZZ", nd.Ticker)
	assert.False(t, r.OK())
}

func TestResultValueOr(t *testing.T) {
	ok := Ok(SentimentSummary{Label: SentimentPositive})
	assert.Equal(t, SentimentPositive, ok.ValueOr(NeutralSentiment()).Label)

	bad := Fail[SentimentSummary](errors.New("x"))
	assert.Equal(t, SentimentNeutral, bad.ValueOr(NeutralSentiment()).Label)
}

func TestTechnicalSummaryNaNIsNull(t *testing.T) {
	s := TechnicalSummary{CurrentPrice: 101.5, RSI: math.NaN(), RSISignal: RSINeutral, MACD: 1, MACDSignal: math.NaN(), Trend: TrendNeutral, Support: 99, Resistance: math.Inf(1)}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current_price":101.5,"rsi":null,"rsi_signal":"Neutral","macd":1,"macd_signal":null,"trend":"Neutral","support":99,"resistance":null}`, string(b))
}

func TestNeutralSentimentHasEmptyHeadlines(t *testing.T) {
	b, err := json.Marshal(NeutralSentiment())
	require.NoError(t, err)
	assert.JSONEq(t, `{"sentiment_score":0,"sentiment_label":"Neutral","news_count":0,"headlines":[]}`, string(b))
}

func TestProviderErrorUnwraps(t *testing.T) {
	base := errors.New("timeout")
	err := &ProviderError{Op: "history", Err: base}
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "history: timeout", err.Error())
}
