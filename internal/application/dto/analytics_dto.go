package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsSummaryDTO totales históricos. NetProfit se calcula, nunca se guarda.
type AnalyticsSummaryDTO struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	TotalOrders  int             `json:"total_orders"`
}

// DailyDataDTO punto de la serie de 30 días.
type DailyDataDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// AnalyticsResponse respuesta de GET /analytics.
type AnalyticsResponse struct {
	Summary   AnalyticsSummaryDTO `json:"summary"`
	DailyData []DailyDataDTO      `json:"dailyData"`
}

// AddExpenseRequest entrada de POST /analytics/add-expense.
type AddExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// SalesRecordResponse salida de una línea del libro.
type SalesRecordResponse struct {
	ID          string          `json:"id"`
	OrderID     *string         `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseEnvelope respuesta de add-expense.
type ExpenseEnvelope struct {
	Expense SalesRecordResponse `json:"expense"`
}
