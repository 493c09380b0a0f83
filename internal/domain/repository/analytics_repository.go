package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals sumas históricas del libro por tipo.
type SalesTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Orders  int // pedidos distintos con línea de ingreso
}

// DailySales ingresos y egresos de un día.
type DailySales struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AnalyticsOverview resultado crudo de la consulta de analítica.
// Lo produce la DB; el use case calcula la utilidad neta.
type AnalyticsOverview struct {
	Totals SalesTotals
	Daily  []DailySales
}

// AnalyticsRepository consultas read-only sobre sales_data.
type AnalyticsRepository interface {
	// GetOverview lee totales y serie diaria desde `since` en una sola transacción de lectura.
	GetOverview(ctx context.Context, since time.Time) (*AnalyticsOverview, error)
}
