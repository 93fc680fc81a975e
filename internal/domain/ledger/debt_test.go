package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/ledger"
	"github.com/jhoicas/tempero-api/internal/domain/money"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDebtAfterSale(t *testing.T) {
	cases := []struct {
		name    string
		current string
		status  entity.PaymentStatus
		amount  string
		paid    string
		want    string
		changed bool
	}{
		{"fiado suma todo el monto", "0", entity.PaymentFiado, "100", "0", "100.00", true},
		{"parcial suma lo pendiente", "10", entity.PaymentParcial, "100", "40", "70.00", true},
		{"pago no toca la deuda", "25.5", entity.PaymentPago, "100", "100", "25.50", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := ledger.DebtAfterSale(d(tc.current), tc.status, d(tc.amount), d(tc.paid))
			assert.Equal(t, tc.want, money.Format(got))
			assert.Equal(t, tc.changed, changed)
		})
	}
}

// fiado (deuda 100) -> parcial 40 -> pago 100.
func TestDebtAfterAmendment_Secuencia(t *testing.T) {
	amount := d("100")
	debt := d("100")

	debt = ledger.DebtAfterAmendment(debt, amount, d("0"), d("40"))
	assert.Equal(t, "60.00", money.Format(debt))

	debt = ledger.DebtAfterAmendment(debt, amount, d("40"), d("100"))
	assert.Equal(t, "0.00", money.Format(debt))
}

func TestDebtAfterAmendment_RepetidaNoDeriva(t *testing.T) {
	amount := d("100")
	debt := ledger.DebtAfterAmendment(d("100"), amount, d("0"), d("40"))
	again := ledger.DebtAfterAmendment(debt, amount, d("40"), d("40"))
	assert.Equal(t, money.Format(debt), money.Format(again))
}

func TestDebtAfterAmendment_NuncaNegativa(t *testing.T) {
	// Venta registrada como pago (no sumó deuda) y luego marcada pago de nuevo con
	// un monto mayor: el delta sería negativo y se corta en cero.
	got := ledger.DebtAfterAmendment(d("0"), d("50"), d("0"), d("50"))
	assert.Equal(t, "0.00", money.Format(got))
}
