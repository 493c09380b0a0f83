package repository

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// SalesRepository libro de ingresos/egresos (solo inserción).
type SalesRepository interface {
	Create(ctx context.Context, record *entity.SalesRecord) error
}
