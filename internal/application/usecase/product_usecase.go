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

// ProductUseCase catálogo de productos. El stock baja por pedidos o por ajuste explícito.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. price > 0 y stock >= 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Price.IsPositive() {
		return nil, domain.Invalid("Name and a positive price required")
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, domain.Invalid("Stock cannot be negative")
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       stock,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista todos los productos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{Products: out}, nil
}

// UpdateStock fija el stock de un producto.
func (uc *ProductUseCase) UpdateStock(ctx context.Context, in dto.UpdateStockRequest) (*dto.ProductResponse, error) {
	id := strings.TrimSpace(in.ProductID)
	if id == "" || in.Stock == nil || *in.Stock < 0 {
		return nil, domain.Invalid("Product ID and a non-negative stock required")
	}
	p, err := uc.repo.UpdateStock(ctx, id, *in.Stock)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(p)
	return &out, nil
}
