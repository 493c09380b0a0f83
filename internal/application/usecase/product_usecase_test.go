package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/memory"
)

func TestProductCreateYList(t *testing.T) {
	uc := NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Kopi Susu", Price: decimal.RequireFromString("18000.50"), Stock: intPtr(12)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "Teh Manis", Price: decimal.NewFromInt(8000)})
	require.NoError(t, err)

	out, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "Teh Manis", out.Products[0].Name)
	assert.Equal(t, 0, out.Products[0].Stock)
	assert.Equal(t, "18000.5", out.Products[1].Price.String())
}

func TestProductCreate_Validacion(t *testing.T) {
	uc := NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(1), Stock: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdateStock(t *testing.T) {
	uc := NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Sambal", Price: decimal.NewFromInt(25000), Stock: intPtr(4)})
	require.NoError(t, err)

	out, err := uc.UpdateStock(ctx, dto.UpdateStockRequest{ProductID: p.ID, Stock: intPtr(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Stock)

	_, err = uc.UpdateStock(ctx, dto.UpdateStockRequest{ProductID: "no-existe", Stock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateStock(ctx, dto.UpdateStockRequest{ProductID: p.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
