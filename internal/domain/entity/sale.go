package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta. CustomerName es una copia tomada al momento de la venta.
type Sale struct {
	ID            string
	CustomerID    string
	CustomerName  string
	Description   string
	Amount        decimal.Decimal
	PaymentStatus PaymentStatus
	PaidAmount    decimal.Decimal
	CreatedAt     time.Time
}

// Pending saldo pendiente de esta venta (Amount - PaidAmount).
func (s *Sale) Pending() decimal.Decimal {
	return s.Amount.Sub(s.PaidAmount)
}
