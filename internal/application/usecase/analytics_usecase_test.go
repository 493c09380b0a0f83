package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/memory"
)

type stubReport struct {
	got *dto.AnalyticsResponse
}

func (s *stubReport) GenerateAnalyticsPDF(_ context.Context, r *dto.AnalyticsResponse, _ time.Time) ([]byte, error) {
	s.got = r
	return []byte("%PDF-stub"), nil
}

func TestAnalyticsOverview_UtilidadCalculada(t *testing.T) {
	store := memory.NewStore()
	sales := memory.NewSalesRepository(store)
	uc := NewAnalyticsUseCase(memory.NewAnalyticsRepository(store), sales, nil)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	uc.clock = func() time.Time { return now }
	ctx := context.Background()

	orderA, orderB := "order-a", "order-b"
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	old := today.AddDate(0, 0, -90)
	for _, rec := range []*entity.SalesRecord{
		{OrderID: &orderA, Amount: decimal.NewFromInt(100000), Type: entity.SalesTypeIncome, Date: yesterday},
		{OrderID: &orderB, Amount: decimal.NewFromInt(50000), Type: entity.SalesTypeIncome, Date: today},
		{Amount: decimal.NewFromInt(30000), Type: entity.SalesTypeExpense, Date: today},
		{Amount: decimal.NewFromInt(5000), Type: entity.SalesTypeExpense, Date: old},
	} {
		require.NoError(t, sales.Create(ctx, rec))
	}

	out, err := uc.GetOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, "150000", out.Summary.TotalIncome.String())
	assert.Equal(t, "35000", out.Summary.TotalExpense.String())
	assert.Equal(t, "115000", out.Summary.NetProfit.String())
	assert.Equal(t, 2, out.Summary.TotalOrders)

	require.Len(t, out.DailyData, 2, "el egreso de hace 90 días queda fuera de la serie")
	assert.Equal(t, "2026-03-14", out.DailyData[0].Date)
	assert.Equal(t, "100000", out.DailyData[0].Net.String())
	assert.Equal(t, "2026-03-15", out.DailyData[1].Date)
	assert.Equal(t, "20000", out.DailyData[1].Net.String())
}

func TestAnalyticsOverview_LibroVacio(t *testing.T) {
	store := memory.NewStore()
	uc := NewAnalyticsUseCase(memory.NewAnalyticsRepository(store), memory.NewSalesRepository(store), nil)

	out, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Summary.NetProfit.IsZero())
	assert.Equal(t, 0, out.Summary.TotalOrders)
	assert.NotNil(t, out.DailyData)
	assert.Empty(t, out.DailyData)
}

func TestAddExpense(t *testing.T) {
	store := memory.NewStore()
	uc := NewAnalyticsUseCase(memory.NewAnalyticsRepository(store), memory.NewSalesRepository(store), nil)
	ctx := context.Background()

	out, err := uc.AddExpense(ctx, dto.AddExpenseRequest{Amount: decimal.NewFromInt(20000), Description: "Listrik"})
	require.NoError(t, err)
	assert.Equal(t, entity.SalesTypeExpense, out.Type)
	assert.Nil(t, out.OrderID)
	assert.Equal(t, time.Now().UTC().Format(dto.DateLayout), out.Date)

	overview, err := uc.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-20000", overview.Summary.NetProfit.String())

	_, err = uc.AddExpense(ctx, dto.AddExpenseRequest{Amount: decimal.Zero, Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.AddExpense(ctx, dto.AddExpenseRequest{Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportPDF(t *testing.T) {
	store := memory.NewStore()
	report := &stubReport{}
	uc := NewAnalyticsUseCase(memory.NewAnalyticsRepository(store), memory.NewSalesRepository(store), report)

	pdf, err := uc.ReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	require.NotNil(t, report.got)

	_, err = NewAnalyticsUseCase(memory.NewAnalyticsRepository(store), memory.NewSalesRepository(store), nil).ReportPDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
