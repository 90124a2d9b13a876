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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios sobre SQLite.
type UserRepo struct {
	q sqlx.ExtContext
}

func NewUserRepository(q sqlx.ExtContext) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	err := r.q.QueryRowxContext(ctx, `INSERT INTO users (username, password_hash, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`, u.Username, u.PasswordHash, u.Role, u.Active, utc(u.CreatedAt)).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := sqlx.GetContext(ctx, r.q, &u, `SELECT * FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	if err := sqlx.SelectContext(ctx, r.q, &out, `SELECT * FROM users WHERE active = 1 ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}
