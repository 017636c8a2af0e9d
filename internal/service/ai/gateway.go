// Package ai sends chat prompts to hosted LLM providers through eino.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"StockPulse/internal/domain/service"
	"StockPulse/pkg/config"
	xlogger "StockPulse/pkg/logger"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

var ErrUnknownProvider = errors.New("unknown ai provider")

// ChatModel is the part of an eino chat model the gateway needs.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Factory builds a chat model for one provider call.
type Factory func(ctx context.Context, provider string, p config.ProviderConfig) (ChatModel, error)

// NewChatModel maps a provider name to its eino implementation.
// Gemini is reached through its OpenAI-compatible endpoint.
func NewChatModel(ctx context.Context, provider string, p config.ProviderConfig) (ChatModel, error) {
	switch provider {
	case "openai", "gemini":
		cfg := &openai.ChatModelConfig{
			APIKey:  p.APIKey,
			BaseURL: p.BaseURL,
			Model:   p.Model,
		}
		if p.MaxTokens > 0 {
			maxTokens := p.MaxTokens
			cfg.MaxTokens = &maxTokens
		}
		m, err := openai.NewChatModel(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "deepseek":
		m, err := deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			APIKey:    p.APIKey,
			BaseURL:   p.BaseURL,
			Model:     p.Model,
			MaxTokens: p.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}

// Gateway implements service.ChatGateway. A model is built per request
// because the key may arrive with the request.
type Gateway struct {
	providers map[string]config.ProviderConfig
	factory   Factory
	timeout   time.Duration
	logger    *xlogger.Logger
}

func NewGateway(cfg config.AIConfig, factory Factory, logger *xlogger.Logger) *Gateway {
	if factory == nil {
		factory = NewChatModel
	}
	return &Gateway{
		providers: map[string]config.ProviderConfig{
			"gemini":   cfg.Gemini,
			"openai":   cfg.OpenAI,
			"deepseek": cfg.DeepSeek,
		},
		factory: factory,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (g *Gateway) Ask(ctx context.Context, req service.ChatRequest) (string, error) {
	p, ok := g.providers[req.Provider]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, req.Provider)
	}
	p.APIKey = req.APIKey
	if req.Model != "" {
		p.Model = req.Model
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	m, err := g.factory(ctx, req.Provider, p)
	if err != nil {
		return "", fmt.Errorf("build %s model: %w", req.Provider, err)
	}

	msgs := make([]*schema.Message, 0, 2)
	if p.SystemPrompt != "" {
		msgs = append(msgs, schema.SystemMessage(p.SystemPrompt))
	}
	msgs = append(msgs, schema.UserMessage(req.Prompt))

	start := time.Now()
	out, err := m.Generate(ctx, msgs)
	if err != nil {
		return "", err
	}
	g.logger.Debug("ai response",
		xlogger.String("provider", req.Provider),
		xlogger.String("model", p.Model),
		xlogger.Duration("elapsed", time.Since(start)),
	)
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}
