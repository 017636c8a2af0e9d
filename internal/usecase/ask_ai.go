package usecase

import (
	"context"
	"strings"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/service"
	xlogger "StockPulse/pkg/logger"
)

const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
)

var providerNames = map[string]string{
	ProviderGemini:   "Gemini",
	ProviderOpenAI:   "OpenAI",
	ProviderDeepSeek: "DeepSeek",
}

// AskAIUseCase forwards prompts to a chat provider. Failures are answered
// in the response text, as the chat widget renders whatever comes back.
type AskAIUseCase struct {
	gateway service.ChatGateway
	keys    map[string]string
	logger  *xlogger.Logger
}

// NewAskAIUseCase takes the configured fallback key per provider.
func NewAskAIUseCase(gateway service.ChatGateway, keys map[string]string, logger *xlogger.Logger) *AskAIUseCase {
	return &AskAIUseCase{gateway: gateway, keys: keys, logger: logger}
}

func (uc *AskAIUseCase) Ask(ctx context.Context, req models.AskAIRequest) models.AskAIResponse {
	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	name, ok := providerNames[provider]
	if !ok {
		return models.AskAIResponse{Response: "Invalid provider specified."}
	}

	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		key = uc.keys[provider]
	}
	if key == "" {
		return models.AskAIResponse{Response: "Error: " + name + " API Key not found."}
	}

	text, err := uc.gateway.Ask(ctx, service.ChatRequest{
		Provider: provider,
		Prompt:   req.Prompt,
		APIKey:   key,
		Model:    req.Model,
	})
	if err != nil {
		uc.logger.Warn("ai provider call failed", xlogger.String("provider", provider), xlogger.Error(err))
		return models.AskAIResponse{Response: "Error communicating with AI provider: " + err.Error()}
	}
	return models.AskAIResponse{Response: text}
}
