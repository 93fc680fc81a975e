package memory

import (
	"context"

	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta operaciones del libro con el lock de escritura del store tomado
// de principio a fin, de modo que leer la deuda, calcularla y escribirla no se
// intercala con otra petición.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repos atados al lock ya tomado. No hay rollback: las
// operaciones del libro en memoria no fallan a mitad de camino.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	held := access{s: r.s, held: true}
	return fn(&CustomerRepo{held}, &SaleRepo{held})
}
