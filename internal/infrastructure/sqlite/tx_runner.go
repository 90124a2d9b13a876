package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/gior-api/internal/application/ports"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sqlx.DB
}

func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia la transacción, ejecuta fn con repos atados a ella y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepos construye los repositorios sobre q (*sqlx.DB o *sqlx.Tx).
func NewRepos(q sqlx.ExtContext) repository.Repos {
	return repository.Repos{
		Products:  NewProductRepository(q),
		Catalog:   NewCatalogRepository(q),
		Stock:     NewStockRepository(q),
		Movements: NewInventoryMovementRepository(q),
		Sales:     NewSaleRepository(q),
		Customers: NewCustomerRepository(q),
		Suppliers: NewSupplierRepository(q),
		Purchases: NewPurchaseRepository(q),
		Users:     NewUserRepository(q),
	}
}
