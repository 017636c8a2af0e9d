package di

import (
	"testing"

	"StockPulse/internal/service/polarity"
	"StockPulse/internal/service/yahoo"
	"StockPulse/pkg/cache"
	"StockPulse/pkg/config"
	xlogger "StockPulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, yaml string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)
	return cfg
}

func TestProvideCacheDisabledIsNil(t *testing.T) {
	c, err := ProvideCache(testConfig(t, "environment: test\n"), xlogger.Nop())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestProvideMarketDataWrapsWithCache(t *testing.T) {
	cfg := testConfig(t, "cache:\n  enabled: true\n  driver: memory\nmarket_data:\n  history_source: finance-go\n")
	c, err := ProvideCache(cfg, xlogger.Nop())
	require.NoError(t, err)
	require.IsType(t, &cache.MemoryCache{}, c)
	defer c.Close()

	md := ProvideMarketData(cfg, ProvideYahooClient(cfg, xlogger.Nop()), c)
	assert.IsType(t, &yahoo.CachedMarketData{}, md)

	md = ProvideMarketData(cfg, ProvideYahooClient(cfg, xlogger.Nop()), nil)
	src, ok := md.(yahoo.Source)
	require.True(t, ok)
	assert.IsType(t, &yahoo.FinanceGoHistory{}, src.HistoryProvider)
}

func TestProvidePolarityScorerFallsBackToLexicon(t *testing.T) {
	cfg := testConfig(t, "sentiment:\n  scorer: llm\n  provider: openai\n")
	assert.IsType(t, &polarity.LexiconScorer{}, ProvidePolarityScorer(cfg, xlogger.Nop()))

	cfg = testConfig(t, "environment: test\n")
	assert.IsType(t, &polarity.LexiconScorer{}, ProvidePolarityScorer(cfg, xlogger.Nop()))
}

func TestProvideDecisionPublisherNilWhenDisabled(t *testing.T) {
	cfg := testConfig(t, "environment: test\n")
	p, err := ProvideKafkaPublisher(cfg)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, ProvideDecisionPublisher(p))
}
