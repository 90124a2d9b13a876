package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo compras sobre SQLite.
type PurchaseRepo struct {
	q sqlx.ExtContext
}

func NewPurchaseRepository(q sqlx.ExtContext) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

func (r *PurchaseRepo) CreateHeader(ctx context.Context, p *entity.Purchase) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO purchases (supplier_id, total, created_by, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`, p.SupplierID, p.Total, p.CreatedBy, utc(p.CreatedAt)).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) CreateLine(ctx context.Context, l *entity.PurchaseLine) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO purchase_lines (purchase_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4) RETURNING id`, l.PurchaseID, l.ProductID, l.Quantity, l.UnitCost).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert purchase line: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, supplier_id, total, created_by, created_at
		FROM purchases ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset); err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return out, nil
}
