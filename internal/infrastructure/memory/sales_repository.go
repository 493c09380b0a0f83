package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

var (
	_ repository.SalesRepository     = (*SalesRepo)(nil)
	_ repository.AnalyticsRepository = (*SalesRepo)(nil)
)

// SalesRepo libro de ventas y analítica en memoria.
type SalesRepo struct {
	s  *Store
	tx bool // creado por TxRunner: la transacción ya tiene txMu
}

// NewSalesRepository construye el repositorio.
func NewSalesRepository(s *Store) *SalesRepo {
	return &SalesRepo{s: s}
}

// NewAnalyticsRepository la analítica lee el mismo libro.
func NewAnalyticsRepository(s *Store) *SalesRepo {
	return &SalesRepo{s: s}
}

// Create agrega una línea al libro.
func (r *SalesRepo) Create(_ context.Context, rec *entity.SalesRecord) error {
	defer r.s.lock(r.tx)()
	now := time.Now().UTC()
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Date.IsZero() {
		rec.Date = truncateDay(now)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	r.s.sales = append(r.s.sales, *rec)
	return nil
}

// GetOverview suma por tipo y agrupa por día desde since.
func (r *SalesRepo) GetOverview(_ context.Context, since time.Time) (*repository.AnalyticsOverview, error) {
	defer r.s.lock(r.tx)()

	out := &repository.AnalyticsOverview{
		Totals: repository.SalesTotals{Income: decimal.Zero, Expense: decimal.Zero},
		Daily:  []repository.DailySales{},
	}
	orders := map[string]struct{}{}
	byDay := map[time.Time]*repository.DailySales{}
	since = truncateDay(since)

	for _, rec := range r.s.sales {
		day := truncateDay(rec.Date)
		var d *repository.DailySales
		if !day.Before(since) {
			d = byDay[day]
			if d == nil {
				d = &repository.DailySales{Date: day, Income: decimal.Zero, Expense: decimal.Zero}
				byDay[day] = d
			}
		}
		switch rec.Type {
		case entity.SalesTypeIncome:
			out.Totals.Income = out.Totals.Income.Add(rec.Amount)
			if rec.OrderID != nil {
				orders[*rec.OrderID] = struct{}{}
			}
			if d != nil {
				d.Income = d.Income.Add(rec.Amount)
			}
		case entity.SalesTypeExpense:
			out.Totals.Expense = out.Totals.Expense.Add(rec.Amount)
			if d != nil {
				d.Expense = d.Expense.Add(rec.Amount)
			}
		}
	}
	out.Totals.Orders = len(orders)
	for _, d := range byDay {
		out.Daily = append(out.Daily, *d)
	}
	sort.Slice(out.Daily, func(i, j int) bool { return out.Daily[i].Date.Before(out.Daily[j].Date) })
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
