package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenRouterService implementa LLMService.
var _ ports.LLMService = (*OpenRouterService)(nil)

const (
	openRouterURL          = "https://openrouter.ai/api/v1/chat/completions"
	DefaultOpenRouterModel = "openai/gpt-4o-mini"
)

// OpenRouterService adaptador de LLMService sobre la API compatible con OpenAI de OpenRouter.
// Es el proveedor por defecto del chat de Therra.
type OpenRouterService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewOpenRouterService construye el adaptador. Sin apiKey, Reply devuelve ports.ErrLLMNotConfigured.
func NewOpenRouterService(apiKey, model string) *OpenRouterService {
	if model == "" {
		model = DefaultOpenRouterModel
	}
	return &OpenRouterService{apiKey: apiKey, model: model, url: openRouterURL, httpClient: newHTTPClient()}
}

// WithURL cambia el endpoint (tests, proxies).
func (s *OpenRouterService) WithURL(url string) *OpenRouterService {
	s.url = url
	return s
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Reply envía system + user y devuelve el contenido del primer choice ("" si no hay).
func (s *OpenRouterService) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	if s.apiKey == "" {
		return "", ports.ErrLLMNotConfigured
	}
	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens: maxReplyTokens,
	}
	headers := map[string]string{"Authorization": "Bearer " + s.apiKey}

	raw, err := postJSON(ctx, s.httpClient, "OpenRouter", s.url, headers, payload, func(body []byte) string {
		var r chatCompletionResponse
		if json.Unmarshal(body, &r) == nil && r.Error != nil {
			return r.Error.Message
		}
		return ""
	})
	if err != nil {
		return "", err
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta OpenRouter: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
