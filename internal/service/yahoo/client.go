// Package yahoo reads daily history, fundamentals and headlines from the
// public Yahoo Finance JSON endpoints.
package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"StockPulse/pkg/config"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"
)

// Client implements repository.MarketData.
type Client struct {
	http      *xhttp.Client
	baseURL   string
	newsCount int
	logger    *xlogger.Logger
}

func NewClient(cfg config.MarketDataConfig, logger *xlogger.Logger) *Client {
	return &Client{
		http: xhttp.NewClient(
			xhttp.WithTimeout(cfg.Timeout),
			xhttp.WithAttempts(cfg.Attempts),
			xhttp.WithHeader("User-Agent", cfg.UserAgent),
			xhttp.WithHeader("Accept", "application/json"),
		),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		newsCount: cfg.NewsCount,
		logger:    logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	return c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: query,
	}, dest)
}

func symbolPath(prefix, ticker string) string {
	return fmt.Sprintf("%s/%s", prefix, url.PathEscape(ticker))
}

// apiError is the error object Yahoo embeds in otherwise valid bodies.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("yahoo: %s: %s", e.Code, e.Description)
}

func (e *apiError) notFound() bool {
	return e != nil && strings.EqualFold(e.Code, "Not Found")
}

// YFRaw is Yahoo's {raw, fmt} number wrapper.
type YFRaw struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

func (r *YFRaw) value() *float64 {
	if r == nil {
		return nil
	}
	v := r.Raw
	return &v
}
