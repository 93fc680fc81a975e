// Package ledger contiene las reglas puras del libro de fiado: cómo cambia la
// deuda de un cliente cuando se registra una venta o se enmienda su pago.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/money"
)

// Pending saldo pendiente de una venta: amount - paid.
func Pending(amount, paid decimal.Decimal) decimal.Decimal {
	return amount.Sub(paid)
}

// DebtAfterSale devuelve la nueva deuda del cliente tras registrar una venta.
// changed es false cuando el estado es "pago": la deuda no se toca (se asume
// paid == amount, sin verificarlo).
func DebtAfterSale(current decimal.Decimal, status entity.PaymentStatus, amount, paid decimal.Decimal) (debt decimal.Decimal, changed bool) {
	if !status.Outstanding() {
		return current, false
	}
	return money.Round(current.Add(Pending(amount, paid))), true
}

// DebtAfterAmendment aplica el delta de una enmienda de pago:
//
//	nueva = max(0, actual - (amount - oldPaid) + (amount - newPaid))
//
// Se resta la contribución previa de la venta y se suma la nueva; no se recalcula
// la deuda desde todas las ventas del cliente.
func DebtAfterAmendment(current, amount, oldPaid, newPaid decimal.Decimal) decimal.Decimal {
	next := current.Sub(Pending(amount, oldPaid)).Add(Pending(amount, newPaid))
	if next.IsNegative() {
		return decimal.Zero.Round(money.Places)
	}
	return money.Round(next)
}
