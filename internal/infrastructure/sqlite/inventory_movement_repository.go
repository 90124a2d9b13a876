package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo libro de movimientos sobre SQLite.
type InventoryMovementRepo struct {
	q sqlx.ExtContext
}

func NewInventoryMovementRepository(q sqlx.ExtContext) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO inventory_movements
		(id, product_id, kind, quantity, reference_id, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.ProductID, string(m.Kind), m.Quantity, m.ReferenceID, m.Reason, m.CreatedBy, utc(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementSelect = `SELECT id, product_id, kind, quantity, reference_id, reason, created_by, created_at
	FROM inventory_movements`

// ListByProduct en orden de registro (rowid).
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Movement, error) {
	var out []*entity.Movement
	if err := sqlx.SelectContext(ctx, r.q, &out, movementSelect+` WHERE product_id = $1 ORDER BY rowid`, productID); err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return out, nil
}

func (r *InventoryMovementRepo) ListByReference(ctx context.Context, referenceID int64) ([]*entity.Movement, error) {
	var out []*entity.Movement
	if err := sqlx.SelectContext(ctx, r.q, &out, movementSelect+` WHERE reference_id = $1 ORDER BY rowid`, referenceID); err != nil {
		return nil, fmt.Errorf("list movements by reference: %w", err)
	}
	return out, nil
}

func (r *InventoryMovementRepo) SumSigned(ctx context.Context, productID int64) (int, error) {
	var sum int
	err := sqlx.GetContext(ctx, r.q, &sum, `SELECT COALESCE(SUM(CASE WHEN kind = 'EXIT' THEN -quantity ELSE quantity END), 0)
		FROM inventory_movements WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}
