// Package storage elige el driver de persistencia según la configuración y
// entrega los repositorios listos para los casos de uso.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/tempero-api/internal/application/ledger"
	"github.com/jhoicas/tempero-api/internal/domain/repository"
	"github.com/jhoicas/tempero-api/internal/infrastructure/memory"
	"github.com/jhoicas/tempero-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tempero-api/pkg/config"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

// Repos repositorios de las cuatro colecciones más el runner del libro.
type Repos struct {
	Driver    string
	Customers repository.CustomerRepository
	Suppliers repository.SupplierRepository
	Sales     repository.SaleRepository
	Expenses  repository.ExpenseRepository
	Tx        ledger.TxRunner

	close func()
}

// Close libera conexiones; no-op en memoria.
func (r *Repos) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open construye los repositorios del driver configurado. Con postgres abre el
// pool y migra el esquema.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repos, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store := memory.NewStore()
		return &Repos{
			Driver:    config.StorageMemory,
			Customers: store.Customers(),
			Suppliers: store.Suppliers(),
			Sales:     store.Sales(),
			Expenses:  store.Expenses(),
			Tx:        memory.NewTxRunner(store),
		}, nil

	case config.StoragePostgres:
		pgLog := log.WithComponent("postgres")
		pool, err := postgres.NewPool(ctx, cfg.DB, pgLog)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		pgLog.Info().Msg("esquema verificado")
		return &Repos{
			Driver:    config.StoragePostgres,
			Customers: postgres.NewCustomerRepository(pool),
			Suppliers: postgres.NewSupplierRepository(pool),
			Sales:     postgres.NewSaleRepository(pool),
			Expenses:  postgres.NewExpenseRepository(pool),
			Tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
}
