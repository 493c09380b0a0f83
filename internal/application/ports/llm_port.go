package ports

import (
	"context"
	"errors"
)

// ErrLLMNotConfigured lo devuelve un adaptador sin API key.
// El caso de uso lo traduce al mensaje de mantenimiento en lugar de un error.
var ErrLLMNotConfigured = errors.New("AI: proveedor sin API key configurada")

// LLMService define el puerto de salida hacia el proveedor de IA del chat de Therra.
// Cualquier adaptador (OpenRouter, Anthropic, Gemini, mock) debe implementar esta interfaz.
type LLMService interface {
	// Reply envía el mensaje del usuario con el prompt de sistema y devuelve el texto del modelo.
	// Un texto vacío sin error significa que el modelo no produjo contenido.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Reply(ctx context.Context, systemPrompt, message string) (string, error)
}
