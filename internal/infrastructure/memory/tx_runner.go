package memory

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/auth"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/orders"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ auth.LicenseTxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks de forma atómica sobre el Store.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunLicense ejecuta la admisión de dispositivos de forma atómica.
func (r *TxRunner) RunLicense(_ context.Context, fn func(repo repository.LicenseRepository) error) error {
	return r.s.run(func() error {
		return fn(&LicenseRepo{s: r.s, tx: true})
	})
}

// RunOrder ejecuta el ingreso de un pedido de forma atómica.
func (r *TxRunner) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	salesRepo repository.SalesRepository,
) error) error {
	return r.s.run(func() error {
		return fn(&OrderRepo{s: r.s, tx: true}, &ProductRepo{s: r.s, tx: true}, &SalesRepo{s: r.s, tx: true})
	})
}
