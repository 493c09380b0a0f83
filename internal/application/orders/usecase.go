// Package orders contiene el ingreso de pedidos: la única escritura multi-tabla del sistema.
package orders

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

// Límites de paginación del listado de pedidos.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// OrderUseCase ingreso, listado y cambio de estado de pedidos.
type OrderUseCase struct {
	tx    TxRunner
	repo  repository.OrderRepository
	clock func() time.Time
}

// NewOrderUseCase construye el caso de uso. repo se usa fuera de transacción (listados y estado).
func NewOrderUseCase(tx TxRunner, repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, repo: repo, clock: time.Now}
}

// Place registra el pedido, descuenta stock y agrega la línea de ingreso en una sola transacción.
// Errores: ErrInvalidInput, ErrNotFound (producto), ErrInsufficientStock.
func (uc *OrderUseCase) Place(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	name := strings.TrimSpace(in.CustomerName)
	productID := strings.TrimSpace(in.ProductID)
	if name == "" || productID == "" || in.Quantity <= 0 || !in.TotalAmount.IsPositive() {
		return nil, domain.Invalid("Customer name, product, quantity and total amount required")
	}
	channel := strings.ToLower(strings.TrimSpace(in.Channel))
	if channel == "" {
		channel = entity.ChannelWeb
	}
	if !entity.IsValidChannel(channel) {
		return nil, domain.Invalid("Unknown channel")
	}

	now := uc.clock().UTC()
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		ProductID:     productID,
		Quantity:      in.Quantity,
		TotalAmount:   in.TotalAmount,
		Channel:       channel,
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	record := &entity.SalesRecord{
		ID:          uuid.New().String(),
		OrderID:     &order.ID,
		Amount:      in.TotalAmount,
		Type:        entity.SalesTypeIncome,
		Description: "Order from " + name,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   now,
	}

	var product *entity.Product
	err := uc.tx.RunOrder(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, salesRepo repository.SalesRepository) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		p, err := productRepo.DecrementStock(ctx, productID, in.Quantity)
		if err != nil {
			return err
		}
		product = p
		return salesRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	order.ProductName = product.Name

	return &dto.CreateOrderResponse{
		Order:       dto.FromOrder(order),
		Product:     dto.FromProduct(product),
		SalesRecord: dto.FromSalesRecord(record),
	}, nil
}

// List devuelve los pedidos más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage(DefaultListLimit, MaxListLimit)
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromOrder(o))
	}
	return &dto.OrderListResponse{Orders: out}, nil
}

// UpdateStatus cambia el estado del pedido. Cualquier transición entre estados conocidos es válida.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	id := strings.TrimSpace(in.OrderID)
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if id == "" || !entity.IsValidOrderStatus(status) {
		return nil, domain.Invalid("Order ID and a valid status required")
	}
	o, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromOrder(o)
	return &out, nil
}
