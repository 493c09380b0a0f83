package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

func seedProduct(t *testing.T, s *Store, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: "Keripik", Price: decimal.NewFromInt(15000), Stock: stock}
	require.NoError(t, NewProductRepository(s).Create(context.Background(), p))
	return p
}

// rejectedOrder ejecuta RunOrder lanzando write en paralelo y falla con stock insuficiente.
func rejectedOrder(t *testing.T, s *Store, productID string, write func()) {
	t.Helper()
	ctx := context.Background()
	done := make(chan struct{})
	err := NewTxRunner(s).RunOrder(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, _ repository.SalesRepository) error {
		require.NoError(t, orderRepo.Create(ctx, &entity.Order{CustomerName: "Budi", ProductID: productID, Quantity: 99}))
		started := make(chan struct{})
		go func() {
			defer close(done)
			close(started)
			write()
		}()
		<-started
		time.Sleep(20 * time.Millisecond)
		_, err := productRepo.DecrementStock(ctx, productID, 99)
		return err
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("la escritura concurrente no terminó tras el rollback")
	}
}

func TestStore_RollbackConservaBotLogConcurrente(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	p := seedProduct(t, s, 1)
	logs := NewBotLogRepository(s)

	rejectedOrder(t, s, p.ID, func() {
		assert.NoError(t, logs.Create(ctx, &entity.BotLog{CustomerName: "Sari", Channel: "whatsapp"}))
	})

	list, err := logs.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sari", list[0].CustomerName)

	orders, err := NewOrderRepository(s).List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_RollbackConservaStockActualizadoEnParalelo(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	p := seedProduct(t, s, 1)
	products := NewProductRepository(s)

	rejectedOrder(t, s, p.ID, func() {
		_, err := products.UpdateStock(ctx, p.ID, 40)
		assert.NoError(t, err)
	})

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 40, got.Stock)
}

func TestStore_RollbackRevierteEscriturasDeLaTransaccion(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	p := seedProduct(t, s, 5)

	err := NewTxRunner(s).RunOrder(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, _ repository.SalesRepository) error {
		require.NoError(t, orderRepo.Create(ctx, &entity.Order{CustomerName: "Budi", ProductID: p.ID, Quantity: 2}))
		_, err := productRepo.DecrementStock(ctx, p.ID, 2)
		require.NoError(t, err)
		return domain.ErrInvalidInput
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := NewProductRepository(s).GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	orders, err := NewOrderRepository(s).List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_LicenciaCreadaDuranteAdmisionFallidaSobrevive(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	licenses := NewLicenseRepository(s)
	done := make(chan struct{})

	err := NewTxRunner(s).RunLicense(ctx, func(repo repository.LicenseRepository) error {
		go func() {
			defer close(done)
			assert.NoError(t, licenses.Create(ctx, &entity.License{LicenseCode: "UMKM-1-AAAAAA", Role: entity.RoleUMKM, MaxDevices: 1, IsActive: true}))
		}()
		time.Sleep(20 * time.Millisecond)
		return domain.ErrNotFound
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	<-done

	list, err := licenses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "UMKM-1-AAAAAA", list[0].LicenseCode)
}
