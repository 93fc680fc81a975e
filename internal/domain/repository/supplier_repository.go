package repository

import (
	"context"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	// List ordena por CreatedAt descendente.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
