package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tempero-api/internal/domain/entity"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	access
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	defer r.write()()
	return r.s.sales.insert(sale.ID, *sale)
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	defer r.read()()
	return r.s.sales.get(id), nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	defer r.read()()
	return newestFirst(r.s.sales.scan(nil)), nil
}

func (r *SaleRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Sale, error) {
	defer r.read()()
	return newestFirst(r.s.sales.scan(func(s *entity.Sale) bool {
		return s.CustomerID == customerID
	})), nil
}

// UpdatePayment reemplaza estado y monto pagado; si la venta no existe no hace nada.
func (r *SaleRepo) UpdatePayment(_ context.Context, id string, status entity.PaymentStatus, paid decimal.Decimal) error {
	defer r.write()()
	r.s.sales.update(id, func(s *entity.Sale) {
		s.PaymentStatus = status
		s.PaidAmount = paid
	})
	return nil
}

func newestFirst(list []*entity.Sale) []*entity.Sale {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
