package yahoo

import (
	"context"
	"errors"
	"net/http"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamps []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

// History returns daily bars for period. Unknown tickers yield no bars and no error.
func (c *Client) History(ctx context.Context, ticker string, period repository.Period) ([]models.Bar, error) {
	var resp chartResponse
	err := c.get(ctx, symbolPath("/v8/finance/chart", ticker), map[string][]string{
		"range":    {string(period)},
		"interval": {"1d"},
	}, &resp)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if resp.Chart.Error.notFound() {
		return nil, nil
	}
	if resp.Chart.Error != nil {
		return nil, resp.Chart.Error
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	r := resp.Chart.Result[0]
	q := r.Indicators.Quote[0]
	bars := make([]models.Bar, 0, len(r.Timestamps))
	for i, ts := range r.Timestamps {
		cl := at(q.Close, i)
		if cl == nil {
			continue
		}
		bar := models.Bar{
			Date:  util.UnixDay(ts),
			Close: *cl,
			Open:  deref(at(q.Open, i), *cl),
			High:  deref(at(q.High, i), *cl),
			Low:   deref(at(q.Low, i), *cl),
		}
		if v := at(q.Volume, i); v != nil {
			bar.Volume = *v
		}
		bars = append(bars, bar)
	}

	c.logger.Debug("history fetched",
		xlogger.String("ticker", ticker),
		xlogger.String("period", string(period)),
		xlogger.Int("bars", len(bars)),
	)
	return bars, nil
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func deref(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
