package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s  *Store
	tx bool // creado por TxRunner: la transacción ya tiene txMu
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create persiste un producto.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.s.lock(r.tx)()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	r.s.products[p.ID] = *p
	r.s.productIDs = append(r.s.productIDs, p.ID)
	return nil
}

// GetByID obtiene un producto o (nil, nil).
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.s.lock(r.tx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List devuelve los productos más recientes primero.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	defer r.s.lock(r.tx)()
	list := make([]*entity.Product, 0, len(r.s.productIDs))
	for i := len(r.s.productIDs) - 1; i >= 0; i-- {
		p := r.s.products[r.s.productIDs[i]]
		list = append(list, &p)
	}
	return list, nil
}

// UpdateStock fija el stock.
func (r *ProductRepo) UpdateStock(_ context.Context, id string, stock int) (*entity.Product, error) {
	defer r.s.lock(r.tx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	p.Stock = stock
	p.UpdatedAt = time.Now().UTC()
	r.s.products[id] = p
	return &p, nil
}

// DecrementStock resta qty si alcanza el stock.
func (r *ProductRepo) DecrementStock(_ context.Context, id string, qty int) (*entity.Product, error) {
	defer r.s.lock(r.tx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Stock < qty {
		return nil, domain.ErrInsufficientStock
	}
	p.Stock -= qty
	p.UpdatedAt = time.Now().UTC()
	r.s.products[id] = p
	return &p, nil
}
