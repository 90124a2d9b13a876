package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo stock por producto sobre SQLite.
type StockRepo struct {
	q sqlx.ExtContext
}

func NewStockRepository(q sqlx.ExtContext) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO stock (product_id, quantity, min_stock, max_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5)`, s.ProductID, s.Quantity, s.MinStock, s.MaxStock, utc(s.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

func (r *StockRepo) Get(ctx context.Context, productID int64) (*entity.Stock, error) {
	var s entity.Stock
	err := sqlx.GetContext(ctx, r.q, &s, `SELECT product_id, quantity, min_stock, max_stock, updated_at
		FROM stock WHERE product_id = $1`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate equivale a Get: la transacción SQLite ya serializa a los escritores.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID int64) (*entity.Stock, error) {
	return r.Get(ctx, productID)
}

func (r *StockRepo) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	res, err := r.q.ExecContext(ctx, `UPDATE stock SET quantity = $1, updated_at = $2 WHERE product_id = $3`,
		quantity, time.Now().UTC(), productID)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewEntityError(domain.ErrProductNotFound, productID)
	}
	return nil
}

func (r *StockRepo) UpdateThresholds(ctx context.Context, productID int64, minStock, maxStock *int) error {
	res, err := r.q.ExecContext(ctx, `UPDATE stock SET min_stock = $1, max_stock = $2, updated_at = $3 WHERE product_id = $4`,
		minStock, maxStock, time.Now().UTC(), productID)
	if err != nil {
		return fmt.Errorf("update stock thresholds: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewEntityError(domain.ErrProductNotFound, productID)
	}
	return nil
}

func (r *StockRepo) Delete(ctx context.Context, productID int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM stock WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
