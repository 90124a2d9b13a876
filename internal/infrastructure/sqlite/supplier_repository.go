package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores sobre SQLite.
type SupplierRepo struct {
	q sqlx.ExtContext
}

func NewSupplierRepository(q sqlx.ExtContext) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO suppliers
		(business_name, tax_id, tax_id_type, contact_name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		s.BusinessName, s.TaxID, s.TaxIDType, s.ContactName, s.Phone, s.Email, s.Address, utc(s.CreatedAt), utc(s.UpdatedAt),
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := sqlx.GetContext(ctx, r.q, &s, `SELECT * FROM suppliers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := sqlx.GetContext(ctx, r.q, &ok, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("supplier exists: %w", err)
	}
	return ok, nil
}

func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT * FROM suppliers
		ORDER BY business_name, id LIMIT $1 OFFSET $2`, limit, offset); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return out, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	res, err := r.q.ExecContext(ctx, `UPDATE suppliers SET business_name = $1, tax_id = $2, tax_id_type = $3,
		contact_name = $4, phone = $5, email = $6, address = $7, updated_at = $8 WHERE id = $9`,
		s.BusinessName, s.TaxID, s.TaxIDType, s.ContactName, s.Phone, s.Email, s.Address, utc(s.UpdatedAt), s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewEntityError(domain.ErrSupplierNotFound, s.ID)
	}
	return nil
}
