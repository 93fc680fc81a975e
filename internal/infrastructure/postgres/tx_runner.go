package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// ledgerLockKey clave del advisory lock que serializa las operaciones del libro.
const ledgerLockKey int64 = 0x7465_6d70_6572_6f // "tempero"

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, toma el advisory lock del libro (se libera con el
// commit o rollback), ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Dos operaciones concurrentes sobre el mismo cliente nunca leen la misma deuda.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	if err := fn(NewCustomerRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
