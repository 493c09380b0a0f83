package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion      = "2023-06-01"
	DefaultAnthropicModel = "claude-3-5-haiku-20241022"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío Reply devuelve ports.ErrLLMNotConfigured.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicService{apiKey: apiKey, model: model, url: anthropicMessagesURL, httpClient: newHTTPClient()}
}

// WithURL cambia el endpoint (tests, proxies).
func (s *AnthropicService) WithURL(url string) *AnthropicService {
	s.url = url
	return s
}

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Reply concatena los bloques de texto de la respuesta de Claude.
func (s *AnthropicService) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	if s.apiKey == "" {
		return "", ports.ErrLLMNotConfigured
	}
	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: maxReplyTokens,
		System:    systemPrompt,
		Messages:  []chatMessage{{Role: "user", Content: message}},
	}
	headers := map[string]string{
		"x-api-key":         s.apiKey,
		"anthropic-version": anthropicVersion,
	}

	raw, err := postJSON(ctx, s.httpClient, "Anthropic", s.url, headers, payload, func(body []byte) string {
		var r anthropicResponse
		if json.Unmarshal(body, &r) == nil && r.Error != nil {
			return r.Error.Type + ": " + r.Error.Message
		}
		return ""
	})
	if err != nil {
		return "", err
	}

	var out anthropicResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	var sb strings.Builder
	for _, c := range out.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	return sb.String(), nil
}
