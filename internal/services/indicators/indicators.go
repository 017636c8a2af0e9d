// Package indicators computes technical indicator series over closing prices.
//
// Every function returns a slice aligned with its input: out[i] is the
// indicator value at bar i, and NaN where the lookback is not yet filled.
package indicators

import "math"

// Names of the indicators in the standard set.
const (
	RSI14      = "RSI_14"
	MACDLine   = "MACD_12_26_9"
	MACDSignal = "MACDs_12_26_9"
	BBLower    = "BBL_5_2.0"
	BBUpper    = "BBU_5_2.0"
	SMA50      = "SMA_50"
	SMA200     = "SMA_200"
)

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Last returns the final value of a series, or NaN if it is empty.
func Last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}

// SMA is the simple moving average over period bars.
func SMA(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA is the exponential moving average seeded with the SMA of the first
// period valid values. Leading NaNs in values are skipped.
func EMA(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 {
		return out
	}
	start := 0
	for start < len(values) && math.IsNaN(values[start]) {
		start++
	}
	if len(values)-start < period {
		return out
	}

	seed := 0.0
	for i := start; i < start+period; i++ {
		seed += values[i]
	}
	prev := seed / float64(period)
	out[start+period-1] = prev

	k := 2.0 / float64(period+1)
	for i := start + period; i < len(values); i++ {
		prev = values[i]*k + prev*(1-k)
		out[i] = prev
	}
	return out
}

// RSI is the relative strength index using Wilder smoothing.
func RSI(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}

	var gain, loss float64
	for i := 1; i <= period; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		g, l := 0.0, 0.0
		if d > 0 {
			g = d
		} else {
			l = -d
		}
		avgGain = (avgGain*(p-1) + g) / p
		avgLoss = (avgLoss*(p-1) + l) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes EMA(fast) - EMA(slow) and its EMA(signal) line.
func MACD(closes []float64, fast, slow, signal int) MACDResult {
	f := EMA(closes, fast)
	s := EMA(closes, slow)
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = f[i] - s[i]
	}
	sig := EMA(line, signal)
	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - sig[i]
	}
	return MACDResult{Line: line, Signal: sig, Histogram: hist}
}

type Bands struct {
	Lower  []float64
	Middle []float64
	Upper  []float64
}

// Bollinger computes SMA(period) +/- k population standard deviations.
func Bollinger(closes []float64, period int, k float64) Bands {
	mid := SMA(closes, period)
	lower := nanSlice(len(closes))
	upper := nanSlice(len(closes))
	for i := period - 1; i < len(closes) && period > 0; i++ {
		if math.IsNaN(mid[i]) {
			continue
		}
		sd := StdDev(closes[i-period+1:i+1], mid[i])
		lower[i] = mid[i] - k*sd
		upper[i] = mid[i] + k*sd
	}
	return Bands{Lower: lower, Middle: mid, Upper: upper}
}

// StdDev is the population standard deviation of window around mean.
func StdDev(window []float64, mean float64) float64 {
	if len(window) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range window {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(window)))
}

// Snapshot is the standard indicator set read at the last bar.
type Snapshot struct {
	Close      float64
	RSI        float64
	MACD       float64
	MACDSignal float64
	BBLower    float64
	BBUpper    float64
	SMA50      float64
	SMA200     float64
}

// Compute evaluates RSI-14, MACD(12,26,9), Bollinger(5,2.0), SMA-50 and
// SMA-200 over the full series and returns the last row.
func Compute(closes []float64) Snapshot {
	macd := MACD(closes, 12, 26, 9)
	bb := Bollinger(closes, 5, 2.0)
	return Snapshot{
		Close:      Last(closes),
		RSI:        Last(RSI(closes, 14)),
		MACD:       Last(macd.Line),
		MACDSignal: Last(macd.Signal),
		BBLower:    Last(bb.Lower),
		BBUpper:    Last(bb.Upper),
		SMA50:      Last(SMA(closes, 50)),
		SMA200:     Last(SMA(closes, 200)),
	}
}

// Values returns the snapshot keyed by indicator name.
func (s Snapshot) Values() map[string]float64 {
	return map[string]float64{
		RSI14:      s.RSI,
		MACDLine:   s.MACD,
		MACDSignal: s.MACDSignal,
		BBLower:    s.BBLower,
		BBUpper:    s.BBUpper,
		SMA50:      s.SMA50,
		SMA200:     s.SMA200,
	}
}
