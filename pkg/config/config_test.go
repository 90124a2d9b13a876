package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Telemetry.Enabled())
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/gior-test.db")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/gior-test.db", cfg.DB.SQLitePath)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.Inventory.LowStockThreshold)
	assert.True(t, cfg.Telemetry.Enabled())
}

func TestLoad_SinJWTSecret_Falla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DriverInvalido_Falla(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "gior", Password: "p@ss:word", DBName: "gior", SSLMode: "disable"}

	assert.Equal(t, "postgres://gior:p%40ss%3Aword@db:5432/gior?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())
}
