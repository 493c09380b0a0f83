package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo a la venta.
// Stock solo cambia por ingreso de pedidos o por ajuste explícito.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
