package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

// Ensure TxRunner implements auth.LicenseTxRunner and orders.TxRunner.
var _ auth.LicenseTxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLicense transacción para la admisión de dispositivos (la fila de la licencia queda bloqueada con FOR UPDATE).
func (r *TxRunner) RunLicense(ctx context.Context, fn func(repo repository.LicenseRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewLicenseRepository(tx))
	})
}

// RunOrder transacción para el ingreso de un pedido: pedido, stock y libro de ventas.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewOrderRepository(tx), NewProductRepository(tx), NewSalesRepository(tx))
	})
}
