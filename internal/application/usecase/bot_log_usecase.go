package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

// Valores por defecto de un registro de bot.
const (
	defaultBotCustomer = "Anonymous"
	defaultBotChannel  = entity.ChannelWhatsApp
	defaultBotIntent   = "general"
	botLogListLimit    = 100
)

// BotLogUseCase registro y consulta de conversaciones de bots externos.
type BotLogUseCase struct {
	repo repository.BotLogRepository
}

// NewBotLogUseCase construye el caso de uso.
func NewBotLogUseCase(repo repository.BotLogRepository) *BotLogUseCase {
	return &BotLogUseCase{repo: repo}
}

// Save guarda un intercambio. customerMessage y botResponse son obligatorios.
func (uc *BotLogUseCase) Save(ctx context.Context, in dto.SaveBotLogRequest) (*dto.BotLogResponse, error) {
	msg := strings.TrimSpace(in.CustomerMessage)
	resp := strings.TrimSpace(in.BotResponse)
	if msg == "" || resp == "" {
		return nil, domain.Invalid("Customer message and bot response required")
	}
	l := &entity.BotLog{
		ID:              uuid.New().String(),
		CustomerName:    orDefault(in.CustomerName, defaultBotCustomer),
		CustomerMessage: msg,
		BotResponse:     resp,
		Channel:         orDefault(in.Channel, defaultBotChannel),
		Intent:          orDefault(in.Intent, defaultBotIntent),
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	out := dto.FromBotLog(l)
	return &out, nil
}

// List devuelve los 100 registros más recientes; channel vacío = todos los canales.
func (uc *BotLogUseCase) List(ctx context.Context, channel string) (*dto.BotLogListResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(channel), botLogListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BotLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.FromBotLog(l))
	}
	return &dto.BotLogListResponse{Logs: out}, nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
