package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	s  *Store
	tx bool // creado por TxRunner: la transacción ya tiene txMu
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s}
}

// Create persiste un pedido. ErrNotFound si el producto no existe (equivale a la FK).
func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	defer r.s.lock(r.tx)()
	if _, ok := r.s.products[o.ProductID]; !ok {
		return domain.ErrNotFound
	}
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	stored := *o
	stored.ProductName = ""
	r.s.orders[o.ID] = stored
	r.s.orderIDs = append(r.s.orderIDs, o.ID)
	return nil
}

func (r *OrderRepo) withProductName(o entity.Order) *entity.Order {
	if p, ok := r.s.products[o.ProductID]; ok {
		o.ProductName = p.Name
	}
	return &o
}

// List devuelve los pedidos más recientes primero.
func (r *OrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	defer r.s.lock(r.tx)()
	list := make([]*entity.Order, 0, limit)
	skipped := 0
	for i := len(r.s.orderIDs) - 1; i >= 0 && len(list) < limit; i-- {
		if skipped < offset {
			skipped++
			continue
		}
		list = append(list, r.withProductName(r.s.orders[r.s.orderIDs[i]]))
	}
	return list, nil
}

// UpdateStatus cambia el estado sin restricciones de transición.
func (r *OrderRepo) UpdateStatus(_ context.Context, id, status string) (*entity.Order, error) {
	defer r.s.lock(r.tx)()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	r.s.orders[id] = o
	return r.withProductName(o), nil
}
