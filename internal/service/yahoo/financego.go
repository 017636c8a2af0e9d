package yahoo

import (
	"context"
	"fmt"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	"StockPulse/pkg/util"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// FinanceGoHistory reads daily bars through piquette/finance-go.
type FinanceGoHistory struct {
	now func() time.Time
}

func NewFinanceGoHistory() *FinanceGoHistory {
	return &FinanceGoHistory{now: time.Now}
}

func (h *FinanceGoHistory) History(ctx context.Context, ticker string, period repository.Period) ([]models.Bar, error) {
	end := h.now()
	start := period.Start(end)

	type result struct {
		bars []models.Bar
		err  error
	}
	done := make(chan result, 1)
	go func() {
		bars, err := fetchChart(ticker, start, end)
		done <- result{bars, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.bars, r.err
	}
}

func fetchChart(ticker string, start, end time.Time) ([]models.Bar, error) {
	iter := chart.Get(&chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var bars []models.Bar
	for iter.Next() {
		b := iter.Bar()
		cl, _ := b.Close.Float64()
		op, _ := b.Open.Float64()
		hi, _ := b.High.Float64()
		lo, _ := b.Low.Float64()
		bars = append(bars, models.Bar{
			Date:   util.UnixDay(int64(b.Timestamp)),
			Open:   op,
			High:   hi,
			Low:    lo,
			Close:  cl,
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go chart %s: %w", ticker, err)
	}
	return bars, nil
}
