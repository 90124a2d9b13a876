// Package store abre la base configurada (PostgreSQL o SQLite) y expone el TxRunner y
// los repositorios fuera de transacción que consumen los casos de uso.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/gior-api/internal/application/ports"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gior-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/gior-api/pkg/config"
)

// Store conexión abierta con sus repositorios.
type Store struct {
	Driver string
	Runner ports.TxRunner
	Repos  repository.Repos
	close  func() error
}

// Close libera la conexión o el pool.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open conecta según cfg.Driver. Con migrate=true aplica el esquema antes de devolver.
// SQLite siempre se migra: el archivo puede no existir todavía.
func Open(ctx context.Context, cfg config.DBConfig, migrate bool) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Driver: cfg.Driver,
			Runner: sqlite.NewTxRunner(db),
			Repos:  sqlite.NewRepos(db),
			close:  db.Close,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Store{
			Driver: cfg.Driver,
			Runner: postgres.NewTxRunner(pool),
			Repos:  postgres.NewRepos(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("store: driver no soportado %q", cfg.Driver)
	}
}
