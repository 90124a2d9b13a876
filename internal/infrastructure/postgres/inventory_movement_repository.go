package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo libro de movimientos sobre PostgreSQL. Solo INSERT y SELECT.
type InventoryMovementRepo struct {
	q Querier
}

func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create registra un movimiento.
func (r *InventoryMovementRepo) Create(ctx context.Context, mov *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (id, product_id, kind, quantity, reference_id, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.ProductID, string(mov.Kind), mov.Quantity, mov.ReferenceID, mov.Reason, mov.CreatedBy, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementColumns = `id::text, product_id, kind, quantity, reference_id, reason, created_by, created_at`

func (r *InventoryMovementRepo) list(ctx context.Context, query string, arg int64) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var kind string
		if err := rows.Scan(&m.ID, &m.ProductID, &kind, &m.Quantity, &m.ReferenceID, &m.Reason, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Kind = entity.MovementKind(kind)
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListByProduct movimientos del producto en orden cronológico (kardex).
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.Movement, error) {
	out, err := r.list(ctx, `SELECT `+movementColumns+` FROM inventory_movements
		WHERE product_id = $1 ORDER BY created_at, id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return out, nil
}

// ListByReference movimientos causados por una venta o compra.
func (r *InventoryMovementRepo) ListByReference(ctx context.Context, referenceID int64) ([]*entity.Movement, error) {
	out, err := r.list(ctx, `SELECT `+movementColumns+` FROM inventory_movements
		WHERE reference_id = $1 ORDER BY created_at, id`, referenceID)
	if err != nil {
		return nil, fmt.Errorf("list movements by reference: %w", err)
	}
	return out, nil
}

// SumSigned Σ cantidades con signo del producto.
func (r *InventoryMovementRepo) SumSigned(ctx context.Context, productID int64) (int, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN kind = 'EXIT' THEN -quantity ELSE quantity END), 0)
		FROM inventory_movements WHERE product_id = $1`
	var sum int64
	if err := r.q.QueryRow(ctx, query, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return int(sum), nil
}
