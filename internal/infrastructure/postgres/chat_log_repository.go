package postgres

import (
	"context"
	"fmt"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var (
	_ repository.BotLogRepository    = (*BotLogRepo)(nil)
	_ repository.TherraLogRepository = (*TherraLogRepo)(nil)
)

// BotLogRepo registro de conversaciones de bots externos.
type BotLogRepo struct {
	q Querier
}

// NewBotLogRepository construye el adaptador.
func NewBotLogRepository(q Querier) *BotLogRepo {
	return &BotLogRepo{q: q}
}

// Create inserta un registro.
func (r *BotLogRepo) Create(ctx context.Context, l *entity.BotLog) error {
	query := `
		INSERT INTO bot_logs (id, customer_name, customer_message, bot_response, channel, intent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CustomerName, l.CustomerMessage, l.BotResponse, l.Channel, l.Intent, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bot log: %w", err)
	}
	return nil
}

// List más recientes primero; channel vacío = todos.
func (r *BotLogRepo) List(ctx context.Context, channel string, limit int) ([]*entity.BotLog, error) {
	query := `
		SELECT id, customer_name, customer_message, bot_response, channel, intent, created_at
		FROM bot_logs
		WHERE ($1 = '' OR channel = $1)
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, channel, limit)
	if err != nil {
		return nil, fmt.Errorf("list bot logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.BotLog
	for rows.Next() {
		var l entity.BotLog
		if err := rows.Scan(&l.ID, &l.CustomerName, &l.CustomerMessage, &l.BotResponse, &l.Channel, &l.Intent, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bot log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// TherraLogRepo registro de intercambios con Therra AI.
type TherraLogRepo struct {
	q Querier
}

// NewTherraLogRepository construye el adaptador.
func NewTherraLogRepository(q Querier) *TherraLogRepo {
	return &TherraLogRepo{q: q}
}

// Create inserta un intercambio.
func (r *TherraLogRepo) Create(ctx context.Context, l *entity.TherraLog) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO therra_logs (id, user_message, ai_response, created_at) VALUES ($1, $2, $3, $4)`,
		l.ID, l.UserMessage, l.AIResponse, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert therra log: %w", err)
	}
	return nil
}
