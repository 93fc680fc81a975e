package postgres

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tempero-api/pkg/config"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

// connectMaxElapsed tiempo máximo reintentando el primer ping (la DB puede
// estar arrancando en el mismo docker compose).
const connectMaxElapsed = 30 * time.Second

// NewPool crea un pool de conexiones PostgreSQL usando DATABASE_URL o el DSN
// armado desde DB_HOST, DB_PORT, etc. y espera a que la base responda.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pingWithRetry(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// pingWithRetry reintenta el ping con backoff exponencial hasta connectMaxElapsed.
func pingWithRetry(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	boff := backoff.NewExponentialBackOff()
	boff.MaxElapsedTime = connectMaxElapsed
	return backoff.RetryNotify(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(boff, ctx),
		func(err error, wait time.Duration) {
			log.Warn().Err(err).Dur("retry_in", wait).Msg("PostgreSQL no disponible, reintentando")
		},
	)
}
