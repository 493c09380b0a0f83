package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// Textos del asistente. El usuario final habla indonesio.
const (
	TherraSystemPrompt = "Therra AI membantu UMKM dengan ramah, profesional, dan sopan. Jawab dalam bahasa Indonesia."

	FallbackMaintenance   = "Maaf, sistem AI sedang dalam pemeliharaan. Silakan coba lagi nanti."
	FallbackError         = "Maaf, terjadi kesalahan. Silakan coba lagi."
	FallbackNotUnderstood = "Maaf, saya tidak dapat memahami pertanyaan Anda."
)

// DefaultAITimeout límite de la llamada al proveedor si no se configura otro.
const DefaultAITimeout = 10 * time.Second

// ChatUseCase chat de Therra AI. Los fallos del proveedor nunca llegan al cliente:
// se responde con un texto de respaldo y el intercambio se registra igual.
type ChatUseCase struct {
	llm     ports.LLMService
	logs    repository.TherraLogRepository
	timeout time.Duration
	log     *logger.Logger
}

// NewChatUseCase construye el caso de uso inyectando el puerto LLMService.
func NewChatUseCase(llm ports.LLMService, logs repository.TherraLogRepository, timeout time.Duration, log *logger.Logger) *ChatUseCase {
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ChatUseCase{llm: llm, logs: logs, timeout: timeout, log: log.Component("therra_chat")}
}

// Chat responde al mensaje del usuario. Solo falla por entrada vacía.
func (uc *ChatUseCase) Chat(ctx context.Context, in dto.ChatRequest) (*dto.ChatResponse, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return nil, domain.Invalid("Message required")
	}

	reply := uc.reply(ctx, msg)

	// registro best-effort: un fallo aquí no cambia la respuesta
	entry := &entity.TherraLog{
		ID:          uuid.New().String(),
		UserMessage: msg,
		AIResponse:  reply,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.logs.Create(context.WithoutCancel(ctx), entry); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar el intercambio")
	}
	return &dto.ChatResponse{Response: reply}, nil
}

func (uc *ChatUseCase) reply(ctx context.Context, msg string) string {
	if uc.llm == nil {
		return FallbackMaintenance
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.Reply(ctx, TherraSystemPrompt, msg)
	switch {
	case errors.Is(err, ports.ErrLLMNotConfigured):
		return FallbackMaintenance
	case err != nil:
		uc.log.Error().Err(err).Msg("fallo del proveedor de IA")
		return FallbackError
	}
	if text = strings.TrimSpace(text); text == "" {
		return FallbackNotUnderstood
	}
	return text
}
