package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/ports"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/entity"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain/repository"
)

// dailyWindowDays días hacia atrás de la serie diaria.
const dailyWindowDays = 30

// AnalyticsUseCase resumen financiero del libro de ventas y registro de egresos.
// La utilidad neta se calcula aquí; nunca se persiste.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	salesRepo     repository.SalesRepository
	report        ports.AnalyticsReportGenerator
	clock         func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. report puede ser nil si no se sirve el PDF.
func NewAnalyticsUseCase(
	analyticsRepo repository.AnalyticsRepository,
	salesRepo repository.SalesRepository,
	report ports.AnalyticsReportGenerator,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		analyticsRepo: analyticsRepo,
		salesRepo:     salesRepo,
		report:        report,
		clock:         time.Now,
	}
}

// GetOverview totales históricos y serie diaria de los últimos 30 días.
func (uc *AnalyticsUseCase) GetOverview(ctx context.Context) (*dto.AnalyticsResponse, error) {
	today := startOfDay(uc.clock())
	raw, err := uc.analyticsRepo.GetOverview(ctx, today.AddDate(0, 0, -dailyWindowDays))
	if err != nil {
		return nil, err
	}

	daily := make([]dto.DailyDataDTO, 0, len(raw.Daily))
	for _, d := range raw.Daily {
		daily = append(daily, dto.DailyDataDTO{
			Date:    d.Date.UTC().Format(dto.DateLayout),
			Income:  d.Income,
			Expense: d.Expense,
			Net:     d.Income.Sub(d.Expense),
		})
	}
	return &dto.AnalyticsResponse{
		Summary: dto.AnalyticsSummaryDTO{
			TotalIncome:  raw.Totals.Income,
			TotalExpense: raw.Totals.Expense,
			NetProfit:    raw.Totals.Income.Sub(raw.Totals.Expense),
			TotalOrders:  raw.Totals.Orders,
		},
		DailyData: daily,
	}, nil
}

// AddExpense registra un egreso con fecha de hoy.
func (uc *AnalyticsUseCase) AddExpense(ctx context.Context, in dto.AddExpenseRequest) (*dto.SalesRecordResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if !in.Amount.IsPositive() || desc == "" {
		return nil, domain.Invalid("Amount and description required")
	}
	now := uc.clock().UTC()
	rec := &entity.SalesRecord{
		ID:          uuid.New().String(),
		Amount:      in.Amount,
		Type:        entity.SalesTypeExpense,
		Description: desc,
		Date:        startOfDay(now),
		CreatedAt:   now,
	}
	if err := uc.salesRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	out := dto.FromSalesRecord(rec)
	return &out, nil
}

// ReportPDF genera el PDF del mismo resumen que GetOverview.
func (uc *AnalyticsUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, domain.ErrNotFound
	}
	overview, err := uc.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateAnalyticsPDF(ctx, overview, uc.clock().UTC())
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
