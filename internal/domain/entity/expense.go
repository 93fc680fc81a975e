package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto. SupplierID solo se llena cuando SupplierName
// coincide con un proveedor registrado.
type Expense struct {
	ID            string
	SupplierID    *string
	SupplierName  *string
	Category      ExpenseCategory
	Description   string
	Amount        decimal.Decimal
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}
