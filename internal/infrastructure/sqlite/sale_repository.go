package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas sobre SQLite.
type SaleRepo struct {
	q sqlx.ExtContext
}

func NewSaleRepository(q sqlx.ExtContext) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) CreateHeader(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO sales (customer_id, seller_name, total, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.CustomerID, s.SellerName, s.Total, s.CreatedBy, utc(s.CreatedAt)).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) CreateLine(ctx context.Context, l *entity.SaleLine) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO sale_lines (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4) RETURNING id`, l.SaleID, l.ProductID, l.Quantity, l.UnitPrice).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := sqlx.GetContext(ctx, r.q, &s, `SELECT id, customer_id, seller_name, total, created_by, created_at
		FROM sales WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) ListLines(ctx context.Context, saleID int64) ([]entity.SaleLine, error) {
	var out []entity.SaleLine
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT id, sale_id, product_id, quantity, unit_price
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`, saleID); err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	return out, nil
}

func (r *SaleRepo) DeleteLines(ctx context.Context, saleID int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM sale_lines WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return nil
}

func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) ListLineViews(ctx context.Context) ([]*entity.SaleLineView, error) {
	var out []*entity.SaleLineView
	err := sqlx.SelectContext(ctx, r.q, &out, `
		SELECT s.id AS sale_id, sl.id AS line_id, s.created_at, p.id AS product_id,
		       p.code AS product_code, p.name AS product_name, sl.quantity, sl.unit_price,
		       s.total AS sale_total, s.seller_name,
		       COALESCE(TRIM(c.name || ' ' || c.first_surname || ' ' || c.second_surname), '') AS customer_name
		FROM sale_lines sl
		JOIN sales s ON s.id = sl.sale_id
		JOIN products p ON p.id = sl.product_id
		LEFT JOIN customers c ON c.id = s.customer_id
		ORDER BY s.id DESC, sl.id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return out, nil
}

type saleTotalsRow struct {
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
	Units     int             `db:"units"`
}

// Totals suma en Go: SQLite no tiene un tipo decimal exacto.
func (r *SaleRepo) Totals(ctx context.Context, since time.Time) (entity.SalesTotals, error) {
	var rows []saleTotalsRow
	err := sqlx.SelectContext(ctx, r.q, &rows, `
		SELECT s.total, s.created_at, COALESCE((SELECT SUM(quantity) FROM sale_lines WHERE sale_id = s.id), 0) AS units
		FROM sales s`)
	if err != nil {
		return entity.SalesTotals{}, fmt.Errorf("sales totals: %w", err)
	}
	out := entity.SalesTotals{Revenue: decimal.Zero}
	for _, row := range rows {
		if row.CreatedAt.Before(since) {
			continue
		}
		out.Sales++
		out.Units += row.Units
		out.Revenue = out.Revenue.Add(row.Total)
	}
	return out, nil
}
