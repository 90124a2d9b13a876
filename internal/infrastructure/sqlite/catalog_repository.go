package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo tipos de producto y tallas sobre SQLite.
type CatalogRepo struct {
	q sqlx.ExtContext
}

func NewCatalogRepository(q sqlx.ExtContext) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) ListProductTypes(ctx context.Context) ([]*entity.ProductType, error) {
	var out []*entity.ProductType
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, name FROM product_types ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	return out, nil
}

func (r *CatalogRepo) CreateProductType(ctx context.Context, pt *entity.ProductType) error {
	return r.insertName(ctx, "product_types", pt.Name, &pt.ID)
}

func (r *CatalogRepo) ProductTypeExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "product_types", id)
}

func (r *CatalogRepo) ListSizes(ctx context.Context) ([]*entity.Size, error) {
	var out []*entity.Size
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, name FROM sizes ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	return out, nil
}

func (r *CatalogRepo) CreateSize(ctx context.Context, size *entity.Size) error {
	return r.insertName(ctx, "sizes", size.Name, &size.ID)
}

func (r *CatalogRepo) SizeExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "sizes", id)
}

func (r *CatalogRepo) insertName(ctx context.Context, table, name string, id *int64) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO `+table+` (name) VALUES ($1) RETURNING id`, name).Scan(id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (r *CatalogRepo) exists(ctx context.Context, table string, id int64) (bool, error) {
	var ok bool
	if err := sqlx.GetContext(ctx, r.q, &ok, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("%s exists: %w", table, err)
	}
	return ok, nil
}
