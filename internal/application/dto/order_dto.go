package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada de POST /orders/insert.
type CreateOrderRequest struct {
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Channel       string          `json:"channel"`
}

// UpdateOrderStatusRequest entrada de POST /orders/update.
type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Channel       string          `json:"channel"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderListResponse respuesta de GET /orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// OrderEnvelope respuesta con un pedido.
type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

// CreateOrderResponse las tres filas escritas por el ingreso de un pedido.
type CreateOrderResponse struct {
	Order       OrderResponse       `json:"order"`
	Product     ProductResponse     `json:"product"`
	SalesRecord SalesRecordResponse `json:"salesRecord"`
}
