package ports

import (
	"context"
	"time"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
)

// AnalyticsReportGenerator genera la representación imprimible de la analítica.
type AnalyticsReportGenerator interface {
	GenerateAnalyticsPDF(ctx context.Context, report *dto.AnalyticsResponse, generatedAt time.Time) ([]byte, error)
}
