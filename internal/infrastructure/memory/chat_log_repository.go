package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var (
	_ repository.BotLogRepository    = (*BotLogRepo)(nil)
	_ repository.TherraLogRepository = (*TherraLogRepo)(nil)
)

// BotLogRepo registros de bots en memoria.
type BotLogRepo struct {
	s *Store
}

// NewBotLogRepository construye el repositorio.
func NewBotLogRepository(s *Store) *BotLogRepo {
	return &BotLogRepo{s: s}
}

// Create agrega un registro.
func (r *BotLogRepo) Create(_ context.Context, l *entity.BotLog) error {
	defer r.s.lock(false)()
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.s.botLogs = append(r.s.botLogs, *l)
	return nil
}

// List devuelve los más recientes primero, filtrando por canal si se indica.
func (r *BotLogRepo) List(_ context.Context, channel string, limit int) ([]*entity.BotLog, error) {
	defer r.s.lock(false)()
	list := make([]*entity.BotLog, 0)
	for i := len(r.s.botLogs) - 1; i >= 0 && len(list) < limit; i-- {
		l := r.s.botLogs[i]
		if channel != "" && l.Channel != channel {
			continue
		}
		list = append(list, &l)
	}
	return list, nil
}

// TherraLogRepo registros del chat de Therra en memoria.
type TherraLogRepo struct {
	s *Store
}

// NewTherraLogRepository construye el repositorio.
func NewTherraLogRepository(s *Store) *TherraLogRepo {
	return &TherraLogRepo{s: s}
}

// Create agrega un intercambio.
func (r *TherraLogRepo) Create(_ context.Context, l *entity.TherraLog) error {
	defer r.s.lock(false)()
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.s.therraLogs = append(r.s.therraLogs, *l)
	return nil
}

// All devuelve una copia de los intercambios registrados (inspección en tests y demos).
func (r *TherraLogRepo) All() []entity.TherraLog {
	defer r.s.lock(false)()
	return append([]entity.TherraLog(nil), r.s.therraLogs...)
}
