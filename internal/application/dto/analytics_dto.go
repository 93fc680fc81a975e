package dto

import "time"

// SummaryDTO respuesta de GET /api/analytics/summary.
// Todos los montos con 2 decimales; NetProfit = TotalReceived - TotalExpenses.
type SummaryDTO struct {
	TotalSales    string `json:"totalSales"`    // suma de montos de ventas
	TotalReceived string `json:"totalReceived"` // suma de montos pagados
	TotalPending  string `json:"totalPending"`  // suma de (monto - pagado)
	TotalExpenses string `json:"totalExpenses"` // suma de gastos
	NetProfit     string `json:"netProfit"`
}

// CategoryTotalDTO total de gastos de una categoría presente.
type CategoryTotalDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// FinancialReportDTO datos del reporte exportable (PDF).
type FinancialReportDTO struct {
	Title       string
	GeneratedAt time.Time
	Summary     SummaryDTO
	ByCategory  []CategoryTotalDTO
	Debtors     []CustomerResponse // clientes con deuda > 0, mayor deuda primero
}
