package orders

import (
	"context"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que pedido, descuento de stock e ingreso se escriban juntos o ninguno.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		salesRepo repository.SalesRepository,
	) error) error
}
