package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tempero-api/internal/application/analytics"
)

// AnalyticsHandler maneja el resumen financiero y el reporte exportable.
type AnalyticsHandler struct {
	summary *analytics.SummaryUseCase
	report  *analytics.ReportUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(summary *analytics.SummaryUseCase, report *analytics.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{summary: summary, report: report}
}

// Summary godoc
// @Summary      Resumen financiero
// @Description  totalSales, totalReceived, totalPending, totalExpenses y netProfit
//               (recibido - gastos). Se recalcula en cada llamada.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.summary.GetSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExpensesByCategory GET /api/analytics/expenses-by-category
func (h *AnalyticsHandler) ExpensesByCategory(c *fiber.Ctx) error {
	out, err := h.summary.ExpensesByCategory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Descargar reporte financiero en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/analytics/report.pdf [get]
func (h *AnalyticsHandler) ReportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.RenderPDF(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
