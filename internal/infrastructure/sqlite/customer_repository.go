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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes sobre SQLite.
type CustomerRepo struct {
	q sqlx.ExtContext
}

func NewCustomerRepository(q sqlx.ExtContext) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO customers
		(first_surname, second_surname, name, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		c.FirstSurname, c.SecondSurname, c.Name, c.Phone, c.Email, c.Address, utc(c.CreatedAt), utc(c.UpdatedAt),
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var c entity.Customer
	err := sqlx.GetContext(ctx, r.q, &c, `SELECT * FROM customers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := sqlx.GetContext(ctx, r.q, &ok, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("customer exists: %w", err)
	}
	return ok, nil
}

func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT * FROM customers
		ORDER BY first_surname, name, id LIMIT $1 OFFSET $2`, limit, offset); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	res, err := r.q.ExecContext(ctx, `UPDATE customers SET first_surname = $1, second_surname = $2, name = $3,
		phone = $4, email = $5, address = $6, updated_at = $7 WHERE id = $8`,
		c.FirstSurname, c.SecondSurname, c.Name, c.Phone, c.Email, c.Address, utc(c.UpdatedAt), c.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewEntityError(domain.ErrCustomerNotFound, c.ID)
	}
	return nil
}
