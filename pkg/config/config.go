package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	MarketData MarketDataConfig `yaml:"market_data"`
	Cache      CacheConfig      `yaml:"cache"`
	Sentiment  struct {
		Scorer   string `yaml:"scorer"` // lexicon or llm
		Provider string `yaml:"provider"`
	} `yaml:"sentiment"`
	Signals  SignalsConfig `yaml:"signals"`
	Analysis struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"analysis"`
	AI      AIConfig      `yaml:"ai"`
	Scraper ScraperConfig `yaml:"scraper"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	Collector struct {
		Enabled   bool          `yaml:"enabled"`
		Topic     string        `yaml:"topic"`
		Interval  time.Duration `yaml:"interval"`
		Threshold int           `yaml:"threshold"`
	} `yaml:"collector"`
}

type MarketDataConfig struct {
	BaseURL       string        `yaml:"base_url"`
	HistorySource string        `yaml:"history_source"` // chart or finance-go
	Timeout       time.Duration `yaml:"timeout"`
	Attempts      int           `yaml:"attempts"`
	UserAgent     string        `yaml:"user_agent"`
	NewsCount     int           `yaml:"news_count"`
	Suffixes      []string      `yaml:"suffixes"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Driver  string        `yaml:"driver"` // memory, redis or layered
	TTL     time.Duration `yaml:"ttl"`
	MaxSize int           `yaml:"max_size"`
	Redis   struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`
}

type SignalsConfig struct {
	Weights struct {
		Trend     int `yaml:"trend"`
		RSI       int `yaml:"rsi"`
		Analyst   int `yaml:"analyst"`
		Sentiment int `yaml:"sentiment"`
	} `yaml:"weights"`
	RSI struct {
		Overbought float64 `yaml:"overbought"`
		Oversold   float64 `yaml:"oversold"`
	} `yaml:"rsi"`
	Polarity struct {
		Positive float64 `yaml:"positive"`
		Negative float64 `yaml:"negative"`
	} `yaml:"polarity"`
	Bands struct {
		StrongBuy  int `yaml:"strong_buy"`
		Buy        int `yaml:"buy"`
		StrongSell int `yaml:"strong_sell"`
		Sell       int `yaml:"sell"`
	} `yaml:"bands"`
}

type ProviderConfig struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	Model        string `yaml:"model"`
	SystemPrompt string `yaml:"system_prompt"`
	MaxTokens    int    `yaml:"max_tokens"`
}

type AIConfig struct {
	Timeout   time.Duration  `yaml:"timeout"`
	Gemini    ProviderConfig `yaml:"gemini"`
	OpenAI    ProviderConfig `yaml:"openai"`
	DeepSeek  ProviderConfig `yaml:"deepseek"`
	RateLimit struct {
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"rate_limit"`
}

type ScraperConfig struct {
	PhotosURL string        `yaml:"photos_url"`
	NewsURL   string        `yaml:"news_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	MaxPhotos int           `yaml:"max_photos"`
	MaxNews   int           `yaml:"max_news"`
}

type KafkaConfig struct {
	Enabled       bool     `yaml:"enabled"`
	Brokers       []string `yaml:"brokers"`
	DecisionTopic string   `yaml:"decision_topic"`
	RequiredAcks  int      `yaml:"required_acks"`
	Compression   string   `yaml:"compression"`
	Producer      struct {
		MaxAttempts  int           `yaml:"max_attempts"`
		Linger       time.Duration `yaml:"linger"`
		BatchSize    int           `yaml:"batch_size"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		Async        bool          `yaml:"async"`
	} `yaml:"producer"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes, fills defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.AI.Gemini.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AI.OpenAI.APIKey = v
	}
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		c.AI.DeepSeek.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Cache.Redis.Host = host
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				c.Cache.Redis.Port = p
			}
		}
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Server.CORSOrigins == nil {
		c.Server.CORSOrigins = []string{"*"}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}

	md := &c.MarketData
	if md.BaseURL == "" {
		md.BaseURL = "https://query1.finance.yahoo.com"
	}
	if md.HistorySource == "" {
		md.HistorySource = "chart"
	}
	if md.Timeout == 0 {
		md.Timeout = 10 * time.Second
	}
	if md.Attempts == 0 {
		md.Attempts = 1
	}
	if md.UserAgent == "" {
		md.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if md.NewsCount == 0 {
		md.NewsCount = 10
	}
	if md.Suffixes == nil {
		md.Suffixes = []string{".NS", ".BO"}
	}

	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Cache.MaxSize == 0 {
		c.Cache.MaxSize = 1000
	}
	if c.Cache.Redis.Host == "" {
		c.Cache.Redis.Host = "localhost"
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "stockpulse"
	}

	if c.Sentiment.Scorer == "" {
		c.Sentiment.Scorer = "lexicon"
	}
	if c.Sentiment.Provider == "" {
		c.Sentiment.Provider = "openai"
	}

	c.Signals.applyDefaults()

	if c.Analysis.Timeout == 0 {
		c.Analysis.Timeout = 15 * time.Second
	}

	if c.AI.Timeout == 0 {
		c.AI.Timeout = 60 * time.Second
	}
	if c.AI.Gemini.BaseURL == "" {
		c.AI.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if c.AI.Gemini.Model == "" {
		c.AI.Gemini.Model = "gemini-flash-latest"
	}
	if c.AI.OpenAI.Model == "" {
		c.AI.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.AI.OpenAI.SystemPrompt == "" {
		c.AI.OpenAI.SystemPrompt = "You are a helpful assistant knowledgeable about the Indian Premier League (IPL) cricket tournament."
	}
	if c.AI.DeepSeek.Model == "" {
		c.AI.DeepSeek.Model = "deepseek-chat"
	}
	if c.AI.DeepSeek.MaxTokens == 0 {
		c.AI.DeepSeek.MaxTokens = 2000
	}
	if c.AI.RateLimit.Capacity == 0 {
		c.AI.RateLimit.Capacity = 10
	}
	if c.AI.RateLimit.RefillPerSec == 0 {
		c.AI.RateLimit.RefillPerSec = 0.5
	}

	if c.Scraper.PhotosURL == "" {
		c.Scraper.PhotosURL = "https://www.iplt20.com/photos"
	}
	if c.Scraper.NewsURL == "" {
		c.Scraper.NewsURL = "https://www.iplt20.com/news"
	}
	if c.Scraper.Timeout == 0 {
		c.Scraper.Timeout = 15 * time.Second
	}
	if c.Scraper.UserAgent == "" {
		c.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if c.Scraper.MaxPhotos == 0 {
		c.Scraper.MaxPhotos = 12
	}
	if c.Scraper.MaxNews == 0 {
		c.Scraper.MaxNews = 6
	}

	if c.Kafka.DecisionTopic == "" {
		c.Kafka.DecisionTopic = "stockpulse.decisions"
	}
	if c.Kafka.Compression == "" {
		c.Kafka.Compression = "snappy"
	}
	if c.Kafka.RequiredAcks == 0 {
		c.Kafka.RequiredAcks = 1
	}
	if c.Logging.Collector.Topic == "" {
		c.Logging.Collector.Topic = "stockpulse.logs"
	}
}

func (s *SignalsConfig) applyDefaults() {
	if s.Weights.Trend == 0 && s.Weights.RSI == 0 && s.Weights.Analyst == 0 && s.Weights.Sentiment == 0 {
		s.Weights.Trend, s.Weights.RSI, s.Weights.Analyst, s.Weights.Sentiment = 2, 1, 2, 1
	}
	if s.RSI.Overbought == 0 && s.RSI.Oversold == 0 {
		s.RSI.Overbought, s.RSI.Oversold = 70, 30
	}
	if s.Polarity.Positive == 0 && s.Polarity.Negative == 0 {
		s.Polarity.Positive, s.Polarity.Negative = 0.1, -0.1
	}
	if s.Bands.StrongBuy == 0 && s.Bands.Buy == 0 && s.Bands.StrongSell == 0 && s.Bands.Sell == 0 {
		s.Bands.StrongBuy, s.Bands.Buy, s.Bands.StrongSell, s.Bands.Sell = 3, 1, -3, -1
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	switch c.MarketData.HistorySource {
	case "chart", "finance-go":
	default:
		return fmt.Errorf("market_data.history_source must be 'chart' or 'finance-go', got '%s'", c.MarketData.HistorySource)
	}
	if c.MarketData.Attempts < 1 {
		return fmt.Errorf("market_data.attempts must be >= 1")
	}
	switch c.Cache.Driver {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.driver must be 'memory', 'redis' or 'layered', got '%s'", c.Cache.Driver)
	}
	switch c.Sentiment.Scorer {
	case "lexicon", "llm":
	default:
		return fmt.Errorf("sentiment.scorer must be 'lexicon' or 'llm', got '%s'", c.Sentiment.Scorer)
	}
	if err := c.Signals.Validate(); err != nil {
		return err
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.Logging.Collector.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("logging.collector requires kafka.enabled")
	}
	return nil
}

// Validate checks weights are positive and bands are ordered.
func (s *SignalsConfig) Validate() error {
	w := s.Weights
	if w.Trend <= 0 || w.RSI <= 0 || w.Analyst <= 0 || w.Sentiment <= 0 {
		return fmt.Errorf("signals.weights must all be positive")
	}
	if s.RSI.Oversold >= s.RSI.Overbought {
		return fmt.Errorf("signals.rsi.oversold (%v) must be below overbought (%v)", s.RSI.Oversold, s.RSI.Overbought)
	}
	if s.Polarity.Negative > s.Polarity.Positive {
		return fmt.Errorf("signals.polarity.negative must not exceed positive")
	}
	b := s.Bands
	if !(b.StrongBuy >= b.Buy && b.Buy > 0 && b.Sell < 0 && b.StrongSell <= b.Sell) {
		return fmt.Errorf("signals.bands must satisfy strong_buy >= buy > 0 > sell >= strong_sell")
	}
	return nil
}
