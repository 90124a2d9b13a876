package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo tipos de producto y tallas sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) ListProductTypes(ctx context.Context) ([]*entity.ProductType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM product_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()
	var out []*entity.ProductType
	for rows.Next() {
		var pt entity.ProductType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		out = append(out, &pt)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) CreateProductType(ctx context.Context, pt *entity.ProductType) error {
	err := r.q.QueryRow(ctx, `INSERT INTO product_types (name) VALUES ($1) RETURNING id`, pt.Name).Scan(&pt.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

func (r *CatalogRepo) ProductTypeExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_types WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("product type exists: %w", err)
	}
	return ok, nil
}

func (r *CatalogRepo) ListSizes(ctx context.Context) ([]*entity.Size, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM sizes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	var out []*entity.Size
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) CreateSize(ctx context.Context, size *entity.Size) error {
	err := r.q.QueryRow(ctx, `INSERT INTO sizes (name) VALUES ($1) RETURNING id`, size.Name).Scan(&size.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert size: %w", err)
	}
	return nil
}

func (r *CatalogRepo) SizeExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sizes WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("size exists: %w", err)
	}
	return ok, nil
}
