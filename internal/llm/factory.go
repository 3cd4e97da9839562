package llm

import (
	"fmt"
	"strings"

	"github.com/rsharda/medreview/internal/model"
)

// NewProvider creates a claim extraction provider based on configuration
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "google":
		return NewGeminiProvider(cfg)

	case "openai":
		return NewOpenAIProvider(cfg)

	case "anthropic", "claude":
		return NewAnthropicProvider(cfg)

	case "":
		return nil, fmt.Errorf("no extraction provider configured (supported: gemini, openai, anthropic)")

	default:
		return nil, fmt.Errorf("unknown extraction provider: %s (supported: gemini, openai, anthropic)", cfg.Provider)
	}
}
