package repository

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// UpdateStock fija el stock; (nil, nil) si el producto no existe.
	UpdateStock(ctx context.Context, id string, stock int) (*entity.Product, error)
	// DecrementStock resta qty solo si hay stock suficiente.
	// Devuelve domain.ErrNotFound o domain.ErrInsufficientStock.
	DecrementStock(ctx context.Context, id string, qty int) (*entity.Product, error)
}
