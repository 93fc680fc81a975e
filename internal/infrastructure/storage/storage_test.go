package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tempero-api/internal/infrastructure/storage"
	"github.com/jhoicas/tempero-api/pkg/config"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}

	repos, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	assert.Equal(t, config.StorageMemory, repos.Driver)
	assert.NotNil(t, repos.Customers)
	assert.NotNil(t, repos.Tx)

	list, err := repos.Sales.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
	_, err := storage.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
