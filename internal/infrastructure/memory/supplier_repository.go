package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	access
}

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	defer r.write()()
	return r.s.suppliers.insert(supplier.ID, *supplier)
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	defer r.read()()
	return r.s.suppliers.get(id), nil
}

func (r *SupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	defer r.read()()
	key := entity.NameKey(name)
	return r.s.suppliers.find(func(s *entity.Supplier) bool {
		return entity.NameKey(s.Name) == key
	}), nil
}

func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	defer r.read()()
	list := r.s.suppliers.scan(nil)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
