package models

import "fmt"

// NoDataError means the provider returned an empty series for the ticker.
type NoDataError struct {
	Ticker string
}

func (e *NoDataError) Error() string { return "No data found for ticker" }

// ProviderError wraps a market-data, polarity or upstream API failure.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// InvalidInputError means the symbol matched no listed ticker variant.
type InvalidInputError struct {
	Symbol string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("could not resolve ticker %q", e.Symbol)
}
