package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo encabezados y líneas de venta sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// CreateHeader inserta el encabezado y asigna sale.ID.
func (r *SaleRepo) CreateHeader(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer_id, seller_name, total, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, sale.CustomerID, sale.SellerName, sale.Total, sale.CreatedBy, sale.CreatedAt).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine inserta una línea y asigna line.ID.
func (r *SaleRepo) CreateLine(ctx context.Context, line *entity.SaleLine) error {
	query := `
		INSERT INTO sale_lines (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := `SELECT id, customer_id, seller_name, total, created_by, created_at FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.CustomerID, &s.SellerName, &s.Total, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListLines líneas de la venta en orden de inserción.
func (r *SaleRepo) ListLines(ctx context.Context, saleID int64) ([]entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `SELECT id, sale_id, product_id, quantity, unit_price FROM sale_lines WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var out []entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *SaleRepo) DeleteLines(ctx context.Context, saleID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_lines WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return nil
}

func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// ListLineViews una fila por línea, las ventas más recientes primero.
func (r *SaleRepo) ListLineViews(ctx context.Context) ([]*entity.SaleLineView, error) {
	query := `
		SELECT s.id, sl.id, s.created_at, p.id, p.code, p.name, sl.quantity, sl.unit_price, s.total, s.seller_name,
		       COALESCE(TRIM(c.name || ' ' || c.first_surname || ' ' || c.second_surname), '')
		FROM sale_lines sl
		JOIN sales s ON s.id = sl.sale_id
		JOIN products p ON p.id = sl.product_id
		LEFT JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at DESC, s.id DESC, sl.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var out []*entity.SaleLineView
	for rows.Next() {
		var v entity.SaleLineView
		if err := rows.Scan(&v.SaleID, &v.LineID, &v.CreatedAt, &v.ProductID, &v.ProductCode, &v.ProductName,
			&v.Quantity, &v.UnitPrice, &v.SaleTotal, &v.SellerName, &v.CustomerName); err != nil {
			return nil, fmt.Errorf("scan sale view: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Totals número de ventas, unidades e ingresos desde since.
func (r *SaleRepo) Totals(ctx context.Context, since time.Time) (entity.SalesTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(s.total), 0),
		       COALESCE((SELECT SUM(sl.quantity) FROM sale_lines sl JOIN sales s2 ON s2.id = sl.sale_id WHERE s2.created_at >= $1), 0)
		FROM sales s
		WHERE s.created_at >= $1`
	var t entity.SalesTotals
	var units int64
	if err := r.q.QueryRow(ctx, query, since).Scan(&t.Sales, &t.Revenue, &units); err != nil {
		return entity.SalesTotals{}, fmt.Errorf("sales totals: %w", err)
	}
	t.Units = int(units)
	return t, nil
}
