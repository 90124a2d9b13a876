package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta la fila de stock de un producto nuevo.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, quantity, min_stock, max_stock, updated_at)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.Quantity, stock.MinStock, stock.MaxStock)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

func (r *StockRepo) get(ctx context.Context, query string, productID int64) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ProductID, &s.Quantity, &s.MinStock, &s.MaxStock, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Get obtiene el stock actual de un producto.
func (r *StockRepo) Get(ctx context.Context, productID int64) (*entity.Stock, error) {
	s, err := r.get(ctx, `
		SELECT product_id, quantity, min_stock, max_stock, updated_at
		FROM stock WHERE product_id = $1`, productID)
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID int64) (*entity.Stock, error) {
	s, err := r.get(ctx, `
		SELECT product_id, quantity, min_stock, max_stock, updated_at
		FROM stock WHERE product_id = $1
		FOR UPDATE`, productID)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// UpdateQuantity fija la cantidad. El CHECK (quantity >= 0) de la tabla es la última barrera.
func (r *StockRepo) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	tag, err := r.q.Exec(ctx, `UPDATE stock SET quantity = $2, updated_at = now() WHERE product_id = $1`, productID, quantity)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.ErrProductNotFound, productID)
	}
	return nil
}

func (r *StockRepo) UpdateThresholds(ctx context.Context, productID int64, minStock, maxStock *int) error {
	tag, err := r.q.Exec(ctx, `UPDATE stock SET min_stock = $2, max_stock = $3, updated_at = now() WHERE product_id = $1`,
		productID, minStock, maxStock)
	if err != nil {
		return fmt.Errorf("update stock thresholds: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.ErrProductNotFound, productID)
	}
	return nil
}

func (r *StockRepo) Delete(ctx context.Context, productID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stock WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}
