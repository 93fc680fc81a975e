// Package analytics contiene los casos de uso del resumen financiero del
// restaurante: totales de ventas y gastos, gastos por categoría y el reporte
// exportable. Todo se recalcula sobre las colecciones completas en cada llamada.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/money"
)

// Totals cifras agregadas, todas redondeadas a 2 decimales.
type Totals struct {
	Sales    decimal.Decimal // Σ amount de ventas
	Received decimal.Decimal // Σ paidAmount
	Pending  decimal.Decimal // Σ (amount - paidAmount)
	Expenses decimal.Decimal // Σ amount de gastos
	Net      decimal.Decimal // Received - Expenses
}

// CategoryTotal total de una categoría de gasto.
type CategoryTotal struct {
	Category entity.ExpenseCategory
	Total    decimal.Decimal
}

// Compute calcula los totales. La ganancia neta usa lo recibido, no lo vendido:
// el fiado todavía no cobrado no cuenta como ingreso.
func Compute(sales []*entity.Sale, expenses []*entity.Expense) Totals {
	var t Totals
	for _, s := range sales {
		t.Sales = t.Sales.Add(s.Amount)
		t.Received = t.Received.Add(s.PaidAmount)
		t.Pending = t.Pending.Add(s.Pending())
	}
	for _, e := range expenses {
		t.Expenses = t.Expenses.Add(e.Amount)
	}
	t.Net = t.Received.Sub(t.Expenses)

	t.Sales = money.Round(t.Sales)
	t.Received = money.Round(t.Received)
	t.Pending = money.Round(t.Pending)
	t.Expenses = money.Round(t.Expenses)
	t.Net = money.Round(t.Net)
	return t
}

// ByCategory suma gastos por categoría en el orden de entity.ExpenseCategories,
// omitiendo las categorías sin gastos.
func ByCategory(expenses []*entity.Expense) []CategoryTotal {
	sums := make(map[entity.ExpenseCategory]decimal.Decimal, len(entity.ExpenseCategories))
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	out := make([]CategoryTotal, 0, len(sums))
	for _, c := range entity.ExpenseCategories {
		total, ok := sums[c]
		if !ok {
			continue
		}
		out = append(out, CategoryTotal{Category: c, Total: money.Round(total)})
	}
	return out
}
