package usecase

import (
	"context"

	"StockPulse/internal/domain/repository"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

// TickerResolver finds the listed variant of a user-supplied symbol.
type TickerResolver struct {
	history  repository.HistoryProvider
	suffixes []string
	logger   *xlogger.Logger
}

func NewTickerResolver(history repository.HistoryProvider, suffixes []string, logger *xlogger.Logger) *TickerResolver {
	return &TickerResolver{history: history, suffixes: suffixes, logger: logger}
}

// Candidates lists the variants probed for symbol, bare symbol first.
func (r *TickerResolver) Candidates(symbol string) []string {
	sym := util.NormalizeSymbol(symbol)
	if sym == "" {
		return nil
	}
	out := make([]string, 0, len(r.suffixes)+1)
	out = append(out, sym)
	for _, sfx := range r.suffixes {
		out = append(out, sym+sfx)
	}
	return out
}

// Resolve returns the first candidate with non-empty 5-day history.
// Probe errors are skipped, not returned.
func (r *TickerResolver) Resolve(ctx context.Context, symbol string) (string, bool) {
	for _, candidate := range r.Candidates(symbol) {
		if ctx.Err() != nil {
			return "", false
		}
		bars, err := r.history.History(ctx, candidate, repository.Period5d)
		if err != nil {
			r.logger.Debug("ticker probe failed", xlogger.String("candidate", candidate), xlogger.Error(err))
			continue
		}
		if len(bars) > 0 {
			return candidate, true
		}
	}
	return "", false
}
