// Package pdf genera el reporte financiero del restaurante en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Vendido / Recibido / Pendiente / Gastos / Lucro    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Total                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cliente | Teléfono | Deuda                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tempero-api/internal/application/analytics"
	"github.com/jhoicas/tempero-api/internal/application/dto"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 150, Green: 60, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNeg     = &props.Color{Red: 180, Green: 20, Blue: 20}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador. author queda en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateFinancialReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateFinancialReport(report *dto.FinancialReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report.Summary)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRow("Gastos por categoria"))
	m.AddRows(tableHeaderRow("Categoria", "Total"))
	if len(report.ByCategory) == 0 {
		m.AddRows(emptyRow("Nenhum gasto registrado"))
	}
	for _, c := range report.ByCategory {
		m.AddRows(twoColRow(entity.ExpenseCategory(c.Category).Label(), c.Total))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionRow("Clientes com fiado"))
	m.AddRows(debtorHeaderRow())
	if len(report.Debtors) == 0 {
		m.AddRows(emptyRow("Nenhum cliente devendo"))
	}
	for _, d := range report.Debtors {
		m.AddRows(debtorRow(d))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.FinancialReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRows: una fila por cifra del resumen; el lucro negativo en rojo.
func summaryRows(s dto.SummaryDTO) []core.Row {
	item := func(label, value string, valueColor *props.Color) core.Row {
		return row.New(7).Add(
			col.New(8).Add(text.New(label, props.Text{Size: 10, Top: 1})),
			col.New(4).Add(text.New("R$ "+value, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: valueColor,
			})),
		)
	}
	netColor := colorPrimary
	if len(s.NetProfit) > 0 && s.NetProfit[0] == '-' {
		netColor = colorNeg
	}
	return []core.Row{
		item("Total vendido", s.TotalSales, nil),
		item("Total recebido", s.TotalReceived, nil),
		item("Pendente (fiado)", s.TotalPending, nil),
		item("Total de gastos", s.TotalExpenses, nil),
		item("Lucro líquido", s.NetProfit, netColor),
	}
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
		})),
	)
}

func tableHeaderRow(left, right string) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(left, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1})),
		col.New(4).Add(text.New(right, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1})),
	)
}

func twoColRow(left, right string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(left, props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New("R$ "+right, props.Text{Size: 9, Align: align.Right, Top: 1})),
	)
}

func debtorHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Cliente", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1})),
		col.New(3).Add(text.New("Telefone", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1})),
		col.New(3).Add(text.New("Deve", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray, Top: 1})),
	)
}

func debtorRow(c dto.CustomerResponse) core.Row {
	phone := "—"
	if c.Phone != nil && *c.Phone != "" {
		phone = *c.Phone
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(c.Name, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(phone, props.Text{Size: 9, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New("R$ "+c.TotalDebt, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 8, Style: fontstyle.Italic, Color: colorGray, Top: 1})),
	)
}
