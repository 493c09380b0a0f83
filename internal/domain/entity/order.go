package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canales de venta.
const (
	ChannelWeb      = "web"
	ChannelWhatsApp = "whatsapp"
	ChannelTelegram = "telegram"
)

// Estados de pedido. Las transiciones no están restringidas.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order representa una compra de un cliente.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	ProductID     string
	ProductName   string // solo lectura (JOIN con products)
	Quantity      int
	TotalAmount   decimal.Decimal
	Channel       string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsValidChannel indica si el canal es uno de los soportados.
func IsValidChannel(ch string) bool {
	switch ch {
	case ChannelWeb, ChannelWhatsApp, ChannelTelegram:
		return true
	}
	return false
}

// IsValidOrderStatus indica si el estado es conocido.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
