package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel = "gemini-1.5-flash"
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. Sin apiKey, Reply devuelve ports.ErrLLMNotConfigured.
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiService{apiKey: apiKey, model: model, baseURL: geminiBaseURL, httpClient: newHTTPClient()}
}

// WithBaseURL cambia la raíz del API (tests, proxies).
func (s *GeminiService) WithBaseURL(base string) *GeminiService {
	s.baseURL = strings.TrimRight(base, "/")
	return s
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Reply devuelve el texto del primer candidato ("" si Gemini no generó nada).
func (s *GeminiService) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	if s.apiKey == "" {
		return "", ports.ErrLLMNotConfigured
	}
	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
		GenerationConfig: genConfig{Temperature: 0.7, MaxOutputTokens: maxReplyTokens},
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		s.baseURL, url.PathEscape(s.model), url.QueryEscape(s.apiKey))

	raw, err := postJSON(ctx, s.httpClient, "Gemini", endpoint, nil, payload, func(body []byte) string {
		var r geminiResponse
		if json.Unmarshal(body, &r) == nil && r.Error != nil {
			return r.Error.Message
		}
		return ""
	})
	if err != nil {
		return "", err
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
