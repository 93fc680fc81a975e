package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	access
}

// Create persiste un nuevo cliente. Nunca sobrescribe un ID existente.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	defer r.write()()
	return r.s.customers.insert(customer.ID, *customer)
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	defer r.read()()
	return r.s.customers.get(id), nil
}

// GetByName busca el primer cliente registrado con ese nombre (sin distinguir mayúsculas).
func (r *CustomerRepo) GetByName(_ context.Context, name string) (*entity.Customer, error) {
	defer r.read()()
	key := entity.NameKey(name)
	return r.s.customers.find(func(c *entity.Customer) bool {
		return entity.NameKey(c.Name) == key
	}), nil
}

// List lista clientes por deuda descendente.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	defer r.read()()
	list := r.s.customers.scan(nil)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].TotalDebt.GreaterThan(list[j].TotalDebt)
	})
	return list, nil
}

// UpdateDebt reemplaza la deuda del cliente; si no existe no hace nada.
func (r *CustomerRepo) UpdateDebt(_ context.Context, id string, debt decimal.Decimal) error {
	defer r.write()()
	r.s.customers.update(id, func(c *entity.Customer) { c.TotalDebt = debt })
	return nil
}
