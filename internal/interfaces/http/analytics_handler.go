package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/application/usecase"
	"github.com/THScholar/Therra-Ai-Platform/pkg/logger"
)

// AnalyticsHandler resumen de ingresos/egresos, PDF y registro de egresos.
type AnalyticsHandler struct {
	uc  *usecase.AnalyticsUseCase
	log *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

// Overview godoc
// @Summary      Totales históricos y serie diaria de 30 días
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AnalyticsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.GetOverview(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to fetch analytics"})
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte de analítica en PDF (A4)
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/report.pdf [get]
func (h *AnalyticsHandler) ReportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, routeErrors{notFound: "Report not available", failure: "Failed to generate report"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="therra-analytics.pdf"`)
	return c.Send(pdf)
}

// AddExpense godoc
// @Summary      Registrar egreso
// @Tags         analytics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddExpenseRequest  true  "amount, description"
// @Success      200   {object}  dto.ExpenseEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analytics/add-expense [post]
func (h *AnalyticsHandler) AddExpense(c *fiber.Ctx) error {
	var in dto.AddExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyError(c)
	}
	out, err := h.uc.AddExpense(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, routeErrors{failure: "Failed to add expense"})
	}
	return c.JSON(dto.ExpenseEnvelope{Expense: *out})
}
