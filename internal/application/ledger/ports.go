package ledger

import (
	"context"

	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

// TxRunner ejecuta una operación del libro de forma atómica frente a otras
// peticiones, pasando repositorios atados a esa transacción. Crear una venta y
// ajustar la deuda del cliente (o enmendar un pago y ajustar la deuda) ocurre
// siempre dentro de un único Run.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
	) error) error
}
