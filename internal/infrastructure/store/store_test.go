package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/infrastructure/store"
	"github.com/jhoicas/gior-api/pkg/config"
)

func TestOpen_SQLiteMigraYSiembraCatalogos(t *testing.T) {
	ctx := context.Background()
	cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "gior.db")}

	s, err := store.Open(ctx, cfg, false)
	require.NoError(t, err)
	defer s.Close()

	sizes, err := s.Repos.Catalog.ListSizes(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sizes)

	// reabrir no duplica los catálogos
	require.NoError(t, s.Close())
	s2, err := store.Open(ctx, cfg, true)
	require.NoError(t, err)
	defer s2.Close()
	again, err := s2.Repos.Catalog.ListSizes(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(sizes))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), config.DBConfig{Driver: "mysql"}, false)
	assert.Error(t, err)
}
