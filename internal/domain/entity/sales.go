package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de línea del libro de ventas.
const (
	SalesTypeIncome  = "income"
	SalesTypeExpense = "expense"
)

// SalesRecord línea del libro de ingresos/egresos que alimenta la analítica.
type SalesRecord struct {
	ID          string
	OrderID     *string // solo en ingresos generados por un pedido
	Amount      decimal.Decimal
	Type        string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
