package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/service"
	xlogger "StockPulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	got  []service.ChatRequest
	text string
	err  error
}

func (g *fakeGateway) Ask(_ context.Context, req service.ChatRequest) (string, error) {
	g.got = append(g.got, req)
	return g.text, g.err
}

func TestAskAIUsesRequestKeyFirst(t *testing.T) {
	gw := &fakeGateway{text: "Chennai won in 2023."}
	uc := NewAskAIUseCase(gw, map[string]string{ProviderOpenAI: "env-key"}, xlogger.Nop())

	resp := uc.Ask(context.Background(), models.AskAIRequest{Prompt: "who won?", Provider: "openai", APIKey: "req-key"})
	assert.Equal(t, "Chennai won in 2023.", resp.Response)
	require.Len(t, gw.got, 1)
	assert.Equal(t, "req-key", gw.got[0].APIKey)

	uc.Ask(context.Background(), models.AskAIRequest{Prompt: "again", Provider: "OpenAI"})
	assert.Equal(t, "env-key", gw.got[1].APIKey)
	assert.Equal(t, ProviderOpenAI, gw.got[1].Provider)
}

func TestAskAIMissingKeys(t *testing.T) {
	gw := &fakeGateway{}
	uc := NewAskAIUseCase(gw, map[string]string{}, xlogger.Nop())

	for provider, want := range map[string]string{
		"gemini":   "Error: Gemini API Key not found.",
		"openai":   "Error: OpenAI API Key not found.",
		"deepseek": "Error: DeepSeek API Key not found.",
	} {
		resp := uc.Ask(context.Background(), models.AskAIRequest{Prompt: "hi", Provider: provider})
		assert.Equal(t, want, resp.Response, provider)
	}
	assert.Empty(t, gw.got)
}

func TestAskAIInvalidProviderAndUpstreamError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("401 unauthorized")}
	uc := NewAskAIUseCase(gw, map[string]string{ProviderGemini: "k"}, xlogger.Nop())

	resp := uc.Ask(context.Background(), models.AskAIRequest{Prompt: "hi", Provider: "claude"})
	assert.Equal(t, "Invalid provider specified.", resp.Response)

	resp = uc.Ask(context.Background(), models.AskAIRequest{Prompt: "hi", Provider: "gemini"})
	assert.Equal(t, fmt.Sprintf("Error communicating with AI provider: %s", "401 unauthorized"), resp.Response)
}
