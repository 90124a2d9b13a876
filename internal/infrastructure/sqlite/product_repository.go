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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos sobre SQLite.
type ProductRepo struct {
	q sqlx.ExtContext
}

func NewProductRepository(q sqlx.ExtContext) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO products (code, name, product_type_id, size_id, color, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		p.Code, p.Name, p.ProductTypeID, p.SizeID, p.Color, p.Price, utc(p.CreatedAt), utc(p.UpdatedAt),
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) get(ctx context.Context, where string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := sqlx.GetContext(ctx, r.q, &p, `SELECT id, code, name, product_type_id, size_id, color, price, created_at, updated_at
		FROM products WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	return r.get(ctx, "code = $1", code)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	res, err := r.q.ExecContext(ctx, `UPDATE products SET name = $1, product_type_id = $2, size_id = $3, color = $4, price = $5, updated_at = $6
		WHERE id = $7`, p.Name, p.ProductTypeID, p.SizeID, p.Color, p.Price, utc(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewEntityError(domain.ErrProductNotFound, p.ID)
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewEntityError(domain.ErrProductInUse, id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) IsReferenced(ctx context.Context, id int64) (bool, error) {
	var referenced bool
	err := sqlx.GetContext(ctx, r.q, &referenced, `SELECT
		EXISTS (SELECT 1 FROM sale_lines WHERE product_id = $1)
		OR EXISTS (SELECT 1 FROM purchase_lines WHERE product_id = $1)
		OR EXISTS (SELECT 1 FROM inventory_movements WHERE product_id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("product references: %w", err)
	}
	return referenced, nil
}

func (r *ProductRepo) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	err := sqlx.SelectContext(ctx, r.q, &out, `
		SELECT p.id AS product_id, p.code, p.name,
		       COALESCE(pt.name, '') AS product_type, COALESCE(sz.name, '') AS size, p.color,
		       COALESCE(s.quantity, 0) AS quantity, p.price, s.min_stock, s.max_stock
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		LEFT JOIN product_types pt ON pt.id = p.product_type_id
		LEFT JOIN sizes sz ON sz.id = p.size_id
		ORDER BY p.code`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return out, nil
}
