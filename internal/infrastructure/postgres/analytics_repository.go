package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre sales_data.
type AnalyticsRepo struct {
	db TxBeginner
}

// NewAnalyticsRepository construye el adaptador de analítica. Recibe el pool (abre su propia tx).
func NewAnalyticsRepository(db TxBeginner) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// GetOverview totales y serie diaria leídos en una transacción REPEATABLE READ de solo lectura,
// para que ambas consultas vean la misma instantánea del libro.
func (r *AnalyticsRepo) GetOverview(ctx context.Context, since time.Time) (*repository.AnalyticsOverview, error) {
	const totalsQuery = `
	SELECT
	    COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)          AS total_income,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)         AS total_expense,
	    COUNT(DISTINCT order_id) FILTER (WHERE type = 'income')          AS total_orders
	FROM sales_data`

	const dailyQuery = `
	SELECT
	    date,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)  AS income,
	    COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
	FROM sales_data
	WHERE date >= $1
	GROUP BY date
	ORDER BY date ASC`

	out := &repository.AnalyticsOverview{Daily: []repository.DailySales{}}
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, r.db, opts, func(tx pgx.Tx) error {
		t := &out.Totals
		if err := tx.QueryRow(ctx, totalsQuery).Scan(&t.Income, &t.Expense, &t.Orders); err != nil {
			return fmt.Errorf("totals: %w", err)
		}

		rows, err := tx.Query(ctx, dailyQuery, since)
		if err != nil {
			return fmt.Errorf("daily: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var d repository.DailySales
			if err := rows.Scan(&d.Date, &d.Income, &d.Expense); err != nil {
				return fmt.Errorf("scan daily: %w", err)
			}
			d.Date = d.Date.UTC()
			out.Daily = append(out.Daily, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("analytics.GetOverview: %w", err)
	}
	return out, nil
}
