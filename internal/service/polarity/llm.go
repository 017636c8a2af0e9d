package polarity

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"StockPulse/internal/service/ai"

	"github.com/cloudwego/eino/schema"
)

const llmInstruction = "You rate the sentiment of financial news headlines. " +
	"Reply with a single number between -1 (very negative) and 1 (very positive). No other text."

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// LLMScorer asks a chat model for a polarity. Unparseable replies are errors.
type LLMScorer struct {
	model ai.ChatModel
}

func NewLLMScorer(m ai.ChatModel) *LLMScorer {
	return &LLMScorer{model: m}
}

func (s *LLMScorer) Polarity(ctx context.Context, text string) (float64, error) {
	out, err := s.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(llmInstruction),
		schema.UserMessage(text),
	})
	if err != nil {
		return 0, fmt.Errorf("llm polarity: %w", err)
	}
	if out == nil {
		return 0, fmt.Errorf("llm polarity: empty reply")
	}
	return parseScore(out.Content)
}

func parseScore(reply string) (float64, error) {
	m := numberRe.FindString(strings.TrimSpace(reply))
	if m == "" {
		return 0, fmt.Errorf("llm polarity: no number in %q", reply)
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("llm polarity: %w", err)
	}
	return clamp(v), nil
}
