package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

// ReportGenerator genera el documento exportable del reporte financiero.
type ReportGenerator interface {
	GenerateFinancialReport(report *dto.FinancialReportDTO) ([]byte, error)
}

// ReportUseCase arma el reporte financiero (resumen, gastos por categoría y
// clientes con deuda) y lo entrega como PDF.
type ReportUseCase struct {
	summary   *SummaryUseCase
	customers repository.CustomerRepository
	generator ReportGenerator
	title     string
}

// NewReportUseCase construye el caso de uso. title encabeza el documento.
func NewReportUseCase(summary *SummaryUseCase, customers repository.CustomerRepository, generator ReportGenerator, title string) *ReportUseCase {
	return &ReportUseCase{summary: summary, customers: customers, generator: generator, title: title}
}

// Build arma los datos del reporte sin renderizarlos.
func (uc *ReportUseCase) Build(ctx context.Context) (*dto.FinancialReportDTO, error) {
	sales, expenses, err := uc.summary.load(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: listar clientes: %w", err)
	}

	debtors := make([]dto.CustomerResponse, 0)
	for _, c := range customers {
		// List ya viene ordenado por deuda descendente.
		if !c.TotalDebt.IsPositive() {
			break
		}
		debtors = append(debtors, *ledger.ToCustomerResponse(c))
	}

	return &dto.FinancialReportDTO{
		Title:       uc.title,
		GeneratedAt: time.Now(),
		Summary:     *toSummaryDTO(Compute(sales, expenses)),
		ByCategory:  toCategoryDTOs(ByCategory(expenses)),
		Debtors:     debtors,
	}, nil
}

// RenderPDF arma el reporte y lo renderiza. Devuelve el nombre de archivo sugerido.
func (uc *ReportUseCase) RenderPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	report, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateFinancialReport(report)
	if err != nil {
		return nil, "", fmt.Errorf("analytics: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("relatorio-%s.pdf", report.GeneratedAt.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
