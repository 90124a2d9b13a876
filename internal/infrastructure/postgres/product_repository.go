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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (code, name, product_type_id, size_id, color, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Code, product.Name, product.ProductTypeID, product.SizeID,
		product.Color, product.Price, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

const productColumns = `id, code, name, product_type_id, size_id, color, price, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.ProductTypeID, &p.SizeID, &p.Color, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE code = $1`, code))
	if err != nil {
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, product_type_id = $3, size_id = $4, color = $5, price = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.ProductTypeID, product.SizeID, product.Color, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.ErrProductNotFound, product.ID)
	}
	return nil
}

// Delete elimina el producto. La fila de stock debe eliminarse antes.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewEntityError(domain.ErrProductInUse, id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// IsReferenced indica si existen líneas de venta, de compra o movimientos del producto.
func (r *ProductRepo) IsReferenced(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM sale_lines WHERE product_id = $1)
		    OR EXISTS (SELECT 1 FROM purchase_lines WHERE product_id = $1)
		    OR EXISTS (SELECT 1 FROM inventory_movements WHERE product_id = $1)`
	var referenced bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&referenced); err != nil {
		return false, fmt.Errorf("product references: %w", err)
	}
	return referenced, nil
}

// ListInventory lista productos con su stock, tipo y talla, ordenados por código.
func (r *ProductRepo) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `
		SELECT p.id, p.code, p.name, COALESCE(pt.name, ''), COALESCE(sz.name, ''), p.color,
		       COALESCE(s.quantity, 0), p.price, s.min_stock, s.max_stock
		FROM products p
		LEFT JOIN stock s ON s.product_id = p.id
		LEFT JOIN product_types pt ON pt.id = p.product_type_id
		LEFT JOIN sizes sz ON sz.id = p.size_id
		ORDER BY p.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ProductID, &it.Code, &it.Name, &it.ProductType, &it.Size, &it.Color,
			&it.Quantity, &it.Price, &it.MinStock, &it.MaxStock); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
