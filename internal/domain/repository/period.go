package repository

import "time"

// Period is a lookback window for daily history, in provider range notation.
type Period string

const (
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
)

// IsValidPeriod returns true if p is a supported period.
func IsValidPeriod(p Period) bool {
	switch p {
	case Period5d, Period1mo, Period6mo, Period1y:
		return true
	default:
		return false
	}
}

// DefaultPeriod returns the default period.
func DefaultPeriod() Period { return Period1y }

// NormalizePeriod converts raw string to a valid period (or default).
func NormalizePeriod(s string) Period {
	p := Period(s)
	if IsValidPeriod(p) {
		return p
	}
	return DefaultPeriod()
}

// Start returns the beginning of the window ending at end.
func (p Period) Start(end time.Time) time.Time {
	switch p {
	case Period5d:
		return end.AddDate(0, 0, -5)
	case Period1mo:
		return end.AddDate(0, -1, 0)
	case Period6mo:
		return end.AddDate(0, -6, 0)
	default:
		return end.AddDate(-1, 0, 0)
	}
}
