package postgres

import (
	"context"
	"fmt"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo libro de ventas (solo inserción).
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// Create agrega una línea de ingreso o egreso.
func (r *SalesRepo) Create(ctx context.Context, rec *entity.SalesRecord) error {
	query := `
		INSERT INTO sales_data (id, order_id, amount, type, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.OrderID, rec.Amount, rec.Type, rec.Description, rec.Date, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales record: %w", err)
	}
	return nil
}
