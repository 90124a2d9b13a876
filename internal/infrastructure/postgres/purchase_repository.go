package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo compras a proveedores sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

func (r *PurchaseRepo) CreateHeader(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (supplier_id, total, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, p.SupplierID, p.Total, p.CreatedBy, p.CreatedAt).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) CreateLine(ctx context.Context, l *entity.PurchaseLine) error {
	query := `
		INSERT INTO purchase_lines (purchase_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, l.PurchaseID, l.ProductID, l.Quantity, l.UnitCost).Scan(&l.ID); err != nil {
		return fmt.Errorf("insert purchase line: %w", err)
	}
	return nil
}

// List compras más recientes primero, sin líneas.
func (r *PurchaseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `SELECT id, supplier_id, total, created_by, created_at FROM purchases
		ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var out []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.Total, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
