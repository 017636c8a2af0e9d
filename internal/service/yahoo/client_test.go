package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	"StockPulse/pkg/cache"
	"StockPulse/pkg/config"
	xlogger "StockPulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1714521600,1714608000,1714694400],
"indicators":{"quote":[{"open":[10,11,null],"high":[12,13,null],"low":[9,10,null],
"close":[11,12.5,null],"volume":[100,200,null]}]}}],"error":null}}`

const summaryBody = `{"quoteSummary":{"result":[{
"price":{"longName":"Infosys Limited","marketCap":{"raw":7.5e12,"fmt":"7.5T"}},
"summaryDetail":{"trailingPE":{"raw":24.1,"fmt":"24.10"},"forwardPE":{"raw":21.3,"fmt":"21.30"}},
"defaultKeyStatistics":{"priceToBook":{"raw":7.9,"fmt":"7.90"}},
"financialData":{"profitMargins":{"raw":0.17,"fmt":"17%"},"recommendationKey":"buy"},
"assetProfile":{"sector":"Technology","industry":""}}],"error":null}}`

const searchBody = `{"news":[
{"title":"Infosys wins deal","publisher":"Reuters","link":"https://x/1","providerPublishTime":1714521600},
{"title":"Infosys shares slip","publisher":"Mint","link":"https://x/2"}]}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cfg, err := config.Parse([]byte("market_data:\n  base_url: " + srv.URL + "\n"))
	require.NoError(t, err)
	return NewClient(cfg.MarketData, xlogger.Nop())
}

func TestHistoryParsesChart(t *testing.T) {
	var gotPath, gotRange, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(chartBody))
	})

	bars, err := c.History(context.Background(), "INFY.NS", repository.Period5d)
	require.NoError(t, err)
	assert.Equal(t, "/v8/finance/chart/INFY.NS", gotPath)
	assert.Equal(t, "5d", gotRange)
	assert.Contains(t, gotUA, "Mozilla")

	require.Len(t, bars, 2)
	assert.Equal(t, 12.5, bars[1].Close)
	assert.Equal(t, int64(200), bars[1].Volume)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), bars[0].Date)
}

func TestHistoryUnknownTickerIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})
	bars, err := c.History(context.Background(), "NOPE", repository.Period5d)
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestHistoryServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.History(context.Background(), "INFY", repository.Period1y)
	assert.Error(t, err)
}

func TestInfoProjectsModules(t *testing.T) {
	var modules string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		modules = r.URL.Query().Get("modules")
		_, _ = w.Write([]byte(summaryBody))
	})

	info, err := c.Info(context.Background(), "INFY.NS")
	require.NoError(t, err)
	assert.Equal(t, "price,summaryDetail,defaultKeyStatistics,financialData,assetProfile", modules)
	assert.Equal(t, "Infosys Limited", info.LongName)
	assert.Equal(t, 7.5e12, *info.MarketCap)
	assert.Equal(t, 24.1, *info.TrailingPE)
	assert.Equal(t, 7.9, *info.PriceToBook)
	assert.Nil(t, info.PEGRatio)
	assert.Nil(t, info.RevenueGrowth)
	assert.Equal(t, "Technology", *info.Sector)
	assert.Nil(t, info.Industry)
	assert.Equal(t, "buy", info.RecommendationKey)
}

func TestNewsParsesSearch(t *testing.T) {
	var q, count string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query().Get("q")
		count = r.URL.Query().Get("newsCount")
		_, _ = w.Write([]byte(searchBody))
	})

	items, err := c.News(context.Background(), "INFY.NS")
	require.NoError(t, err)
	assert.Equal(t, "INFY.NS", q)
	assert.Equal(t, "10", count)
	require.Len(t, items, 2)
	assert.Equal(t, "Infosys wins deal", items[0].Title)
	assert.False(t, items[0].PublishedAt.IsZero())
	assert.True(t, items[1].PublishedAt.IsZero())
}

func TestCachedMarketDataHitsUpstreamOnce(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(chartBody))
	})
	mc := cache.NewMemoryCache()
	defer mc.Close()
	cached := NewCachedMarketData(Source{HistoryProvider: c, InfoProvider: c, NewsProvider: c}, mc, time.Minute)

	var last []models.Bar
	for i := 0; i < 3; i++ {
		bars, err := cached.History(context.Background(), "INFY.NS", repository.Period1y)
		require.NoError(t, err)
		last = bars
	}
	assert.Equal(t, 1, calls)
	assert.Len(t, last, 2)
	assert.True(t, last[0].Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
}
