package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID y GetByName devuelven (nil, nil) cuando no existe el registro.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// GetByName busca por nombre exacto sin distinguir mayúsculas.
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	// List ordena por TotalDebt descendente.
	List(ctx context.Context) ([]*entity.Customer, error)
	// UpdateDebt no hace nada si el cliente no existe.
	UpdateDebt(ctx context.Context, id string, debt decimal.Decimal) error
}
