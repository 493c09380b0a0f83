package ai

import (
	"fmt"
	"strings"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/pkg/config"
)

// NewFromConfig elige el adaptador según AI_PROVIDER.
func NewFromConfig(cfg config.AIConfig) (ports.LLMService, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "openrouter":
		return NewOpenRouterService(cfg.OpenRouterAPIKey, cfg.OpenRouterModel), nil
	case "anthropic":
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "gemini":
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	}
	return nil, fmt.Errorf("AI_PROVIDER desconocido: %q", cfg.Provider)
}
