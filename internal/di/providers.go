package di

import (
	"context"
	"fmt"
	"time"

	"StockPulse/internal/domain/repository"
	"StockPulse/internal/handler/api"
	internalrepo "StockPulse/internal/repository"
	"StockPulse/internal/service/ai"
	"StockPulse/internal/service/iplt20"
	"StockPulse/internal/service/polarity"
	"StockPulse/internal/service/ratelimit"
	"StockPulse/internal/service/yahoo"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/cache"
	"StockPulse/pkg/config"
	xhttp "StockPulse/pkg/http"
	pkgkafka "StockPulse/pkg/kafka"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
	"StockPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(xlogger.String("env", cfg.Environment)), nil
}

// ProvideCache creates the response cache, or nil when caching is off.
func ProvideCache(cfg *config.Config, logger *xlogger.Logger) (cache.Service, error) {
	cc := cfg.Cache
	if !cc.Enabled {
		return nil, nil
	}

	if cc.Driver == "memory" {
		logger.Info("cache enabled", xlogger.String("driver", cc.Driver), xlogger.Int("max_size", cc.MaxSize))
		return cache.NewMemoryCache(
			cache.WithMemoryMaxSize(cc.MaxSize),
			cache.WithMemoryCleanup(time.Minute),
		), nil
	}

	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cc.Redis.Host),
		cache.WithRedisPort(cc.Redis.Port),
		cache.WithRedisPassword(cc.Redis.Password),
		cache.WithRedisDB(cc.Redis.DB),
		cache.WithRedisPrefix(cc.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	logger.Info("cache enabled",
		xlogger.String("driver", cc.Driver),
		xlogger.String("redis", fmt.Sprintf("%s:%d", cc.Redis.Host, cc.Redis.Port)),
	)
	if cc.Driver == "layered" {
		return cache.NewLayeredCache(rc, cache.WithLayeredMemorySize(cc.MaxSize)), nil
	}
	return rc, nil
}

// ProvideYahooClient creates the Yahoo Finance JSON client.
func ProvideYahooClient(cfg *config.Config, logger *xlogger.Logger) *yahoo.Client {
	return yahoo.NewClient(cfg.MarketData, logger)
}

// ProvideMarketData picks the history source and wraps the result in the
// cache when one is configured.
func ProvideMarketData(cfg *config.Config, client *yahoo.Client, c cache.Service) repository.MarketData {
	var md repository.MarketData = client
	if cfg.MarketData.HistorySource == "finance-go" {
		md = yahoo.Source{
			HistoryProvider: yahoo.NewFinanceGoHistory(),
			InfoProvider:    client,
			NewsProvider:    client,
		}
	}
	if c != nil {
		md = yahoo.NewCachedMarketData(md, c, cfg.Cache.TTL)
	}
	return md
}

// ProvidePolarityScorer returns the lexicon scorer unless the LLM scorer
// is selected and its provider has a key.
func ProvidePolarityScorer(cfg *config.Config, logger *xlogger.Logger) repository.PolarityScorer {
	if cfg.Sentiment.Scorer != "llm" {
		return polarity.NewLexiconScorer()
	}

	p, ok := providerConfig(cfg.AI, cfg.Sentiment.Provider)
	if !ok || p.APIKey == "" {
		logger.Warn("llm scorer has no api key, using lexicon", xlogger.String("provider", cfg.Sentiment.Provider))
		return polarity.NewLexiconScorer()
	}
	m, err := ai.NewChatModel(context.Background(), cfg.Sentiment.Provider, p)
	if err != nil {
		logger.Warn("llm scorer unavailable, using lexicon", xlogger.Error(err))
		return polarity.NewLexiconScorer()
	}
	return polarity.NewLLMScorer(m)
}

func providerConfig(c config.AIConfig, provider string) (config.ProviderConfig, bool) {
	switch provider {
	case usecase.ProviderGemini:
		return c.Gemini, true
	case usecase.ProviderOpenAI:
		return c.OpenAI, true
	case usecase.ProviderDeepSeek:
		return c.DeepSeek, true
	}
	return config.ProviderConfig{}, false
}

// ProvideKafkaPublisher creates the decision publisher, or nil when Kafka is off.
func ProvideKafkaPublisher(cfg *config.Config) (*internalrepo.KafkaDecisionPublisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatching(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.Linger),
		pkgkafka.WithWriteTimeout(cfg.Kafka.Producer.WriteTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaDecisionPublisher(producer, cfg.Kafka.DecisionTopic), nil
}

// ProvideDecisionPublisher keeps a disabled publisher a true nil interface.
func ProvideDecisionPublisher(p *internalrepo.KafkaDecisionPublisher) repository.DecisionPublisher {
	if p == nil {
		return nil
	}
	return p
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New(nil)
}

func ProvideDecisionConfig(cfg *config.Config) usecase.DecisionConfig {
	return usecase.NewDecisionConfig(cfg.Signals)
}

func ProvideAnalysisUseCase(
	cfg *config.Config,
	md repository.MarketData,
	scorer repository.PolarityScorer,
	dc usecase.DecisionConfig,
	pub repository.DecisionPublisher,
	m repository.Metrics,
	logger *xlogger.Logger,
) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(usecase.AnalysisDeps{
		Resolver:    usecase.NewTickerResolver(md, cfg.MarketData.Suffixes, logger),
		Technical:   usecase.NewTechnicalSummarizer(md, dc, logger),
		Fundamental: usecase.NewFundamentalSummarizer(md),
		Sentiment:   usecase.NewSentimentSummarizer(md, scorer, dc),
		Engine:      usecase.NewDecisionEngine(dc),
		Publisher:   pub,
		Metrics:     m,
		Logger:      logger,
		Timeout:     cfg.Analysis.Timeout,
	})
}

func ProvideAskAIUseCase(cfg *config.Config, logger *xlogger.Logger) *usecase.AskAIUseCase {
	gateway := ai.NewGateway(cfg.AI, nil, logger)
	return usecase.NewAskAIUseCase(gateway, map[string]string{
		usecase.ProviderGemini:   cfg.AI.Gemini.APIKey,
		usecase.ProviderOpenAI:   cfg.AI.OpenAI.APIKey,
		usecase.ProviderDeepSeek: cfg.AI.DeepSeek.APIKey,
	}, logger)
}

func ProvideMediaUseCase(cfg *config.Config, logger *xlogger.Logger) *usecase.MediaUseCase {
	return usecase.NewMediaUseCase(
		iplt20.NewPhotoScraper(cfg.Scraper, logger),
		iplt20.NewNewsScraper(cfg.Scraper, logger),
		cfg.Scraper.MaxPhotos,
		cfg.Scraper.MaxNews,
		logger,
	)
}

func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.AI.RateLimit.Capacity, cfg.AI.RateLimit.RefillPerSec)
}

// ProvideRouter builds every route group.
func ProvideRouter(
	logger *xlogger.Logger,
	analysis *usecase.AnalysisUseCase,
	askAI *usecase.AskAIUseCase,
	media *usecase.MediaUseCase,
	rl *ratelimit.Limiter,
) *api.Router {
	return api.NewRouter(
		api.NewAnalysisHandler(logger, analysis),
		api.NewAskAIHandler(logger, askAI, rl),
		api.NewMediaHandler(media),
	)
}

// ProvideHTTPServer creates the Echo server.
func ProvideHTTPServer(cfg *config.Config, router *api.Router, logger *xlogger.Logger) *xhttp.Server {
	return xhttp.NewServer(router,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
		xhttp.WithSlowThreshold(cfg.Analysis.Timeout/2),
		xhttp.WithLogger(logger),
	)
}

// ProvideApp creates the application and attaches the error-log collector
// when it is enabled.
func ProvideApp(
	cfg *config.Config,
	srv *xhttp.Server,
	logger *xlogger.Logger,
	pub *internalrepo.KafkaDecisionPublisher,
	c cache.Service,
	rl *ratelimit.Limiter,
) *server.App {
	if cfg.Logging.Collector.Enabled && pub != nil {
		logger.AddCollector(&xlogger.CollectionConfig{
			TimeInterval:   cfg.Logging.Collector.Interval,
			CountThreshold: cfg.Logging.Collector.Threshold,
			Topic:          cfg.Logging.Collector.Topic,
			Publisher:      pub,
		})
	}

	app := server.New(srv, logger)
	app.OnTick(time.Minute, func() { rl.Prune(10 * time.Minute) })
	if pub != nil {
		app.AddCloser("kafka", pub)
	}
	if c != nil {
		app.AddCloser("cache", c)
	}
	return app
}
