package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
)

func TestRupiah(t *testing.T) {
	g := NewMarotoReportGenerator()
	assert.Equal(t, "Rp 1.500.000", g.rupiah(decimal.NewFromInt(1500000)))
	assert.Equal(t, "Rp 950", g.rupiah(decimal.NewFromInt(950)))
	assert.Equal(t, "-Rp 20.000", g.rupiah(decimal.NewFromInt(-20000)))
	assert.Equal(t, "Rp 18.001", g.rupiah(decimal.RequireFromString("18000.50")))
}

func TestGenerateAnalyticsPDF(t *testing.T) {
	g := NewMarotoReportGenerator()
	report := &dto.AnalyticsResponse{
		Summary: dto.AnalyticsSummaryDTO{
			TotalIncome:  decimal.NewFromInt(150000),
			TotalExpense: decimal.NewFromInt(35000),
			NetProfit:    decimal.NewFromInt(115000),
			TotalOrders:  2,
		},
		DailyData: []dto.DailyDataDTO{
			{Date: "2026-03-14", Income: decimal.NewFromInt(100000), Expense: decimal.Zero, Net: decimal.NewFromInt(100000)},
			{Date: "2026-03-15", Income: decimal.NewFromInt(50000), Expense: decimal.NewFromInt(70000), Net: decimal.NewFromInt(-20000)},
		},
	}

	out, err := g.GenerateAnalyticsPDF(context.Background(), report, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateAnalyticsPDF_SinDatos(t *testing.T) {
	out, err := NewMarotoReportGenerator().GenerateAnalyticsPDF(context.Background(), &dto.AnalyticsResponse{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
