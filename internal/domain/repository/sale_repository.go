package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List y ListByCustomer ordenan por CreatedAt descendente.
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Sale, error)
	// UpdatePayment no hace nada si la venta no existe.
	UpdatePayment(ctx context.Context, id string, status entity.PaymentStatus, paid decimal.Decimal) error
}
