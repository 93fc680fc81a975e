package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del restaurante con su saldo de fiado.
// TotalDebt solo lo modifica la lógica del libro (ventas y enmiendas de pago).
type Customer struct {
	ID        string
	Name      string
	Phone     *string
	TotalDebt decimal.Decimal
	CreatedAt time.Time
}
