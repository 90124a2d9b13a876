package repository

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
}
