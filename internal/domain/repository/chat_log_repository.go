package repository

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// BotLogRepository registro de conversaciones de bots externos.
type BotLogRepository interface {
	Create(ctx context.Context, log *entity.BotLog) error
	// List devuelve los más recientes primero; channel vacío = todos.
	List(ctx context.Context, channel string, limit int) ([]*entity.BotLog, error)
}

// TherraLogRepository registro de intercambios con Therra AI.
type TherraLogRepository interface {
	Create(ctx context.Context, log *entity.TherraLog) error
}
