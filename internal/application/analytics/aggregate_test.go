package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/application/analytics"
	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sale(amount, paid string) *entity.Sale {
	return &entity.Sale{Amount: d(amount), PaidAmount: d(paid), PaymentStatus: entity.PaymentParcial}
}

func expense(c entity.ExpenseCategory, amount string) *entity.Expense {
	return &entity.Expense{Category: c, Amount: d(amount), PaymentStatus: entity.PaymentPago}
}

func TestCompute_Identidades(t *testing.T) {
	sales := []*entity.Sale{sale("100", "100"), sale("80.50", "30.25"), sale("19.99", "0")}
	expenses := []*entity.Expense{expense(entity.CategoryAluguel, "50"), expense(entity.CategoryOutros, "12.34")}

	got := analytics.Compute(sales, expenses)

	assert.Equal(t, "200.49", got.Sales.StringFixed(2))
	assert.Equal(t, "130.25", got.Received.StringFixed(2))
	assert.Equal(t, "70.24", got.Pending.StringFixed(2))
	assert.Equal(t, "62.34", got.Expenses.StringFixed(2))
	assert.Equal(t, "67.91", got.Net.StringFixed(2))

	assert.True(t, got.Sales.Equal(got.Received.Add(got.Pending)))
	assert.True(t, got.Net.Equal(got.Received.Sub(got.Expenses)))
}

func TestCompute_Vacio(t *testing.T) {
	got := analytics.Compute(nil, nil)
	assert.Equal(t, "0.00", got.Sales.StringFixed(2))
	assert.Equal(t, "0.00", got.Net.StringFixed(2))
}

func TestCompute_GananciaNegativa(t *testing.T) {
	got := analytics.Compute(
		[]*entity.Sale{sale("10", "0")},
		[]*entity.Expense{expense(entity.CategorySalarios, "25")},
	)
	assert.Equal(t, "-25.00", got.Net.StringFixed(2))
}

func TestByCategory_OrdenYOmision(t *testing.T) {
	expenses := []*entity.Expense{
		expense(entity.CategoryOutros, "5"),
		expense(entity.CategoryIngredientes, "10.10"),
		expense(entity.CategoryOutros, "2.5"),
		expense(entity.CategoryIngredientes, "0.90"),
	}

	got := analytics.ByCategory(expenses)

	require.Len(t, got, 2)
	assert.Equal(t, entity.CategoryIngredientes, got[0].Category)
	assert.Equal(t, "11.00", got[0].Total.StringFixed(2))
	assert.Equal(t, entity.CategoryOutros, got[1].Category)
	assert.Equal(t, "7.50", got[1].Total.StringFixed(2))

	var sum decimal.Decimal
	for _, c := range got {
		sum = sum.Add(c.Total)
	}
	assert.True(t, sum.Equal(analytics.Compute(nil, expenses).Expenses))
}
