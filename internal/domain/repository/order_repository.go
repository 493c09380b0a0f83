package repository

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// List devuelve los pedidos más recientes primero, con el nombre del producto.
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	// UpdateStatus devuelve (nil, nil) si el pedido no existe.
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
}
