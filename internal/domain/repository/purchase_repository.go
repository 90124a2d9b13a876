package repository

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// PurchaseRepository persistencia de compras a proveedores.
type PurchaseRepository interface {
	CreateHeader(ctx context.Context, purchase *entity.Purchase) error
	CreateLine(ctx context.Context, line *entity.PurchaseLine) error
	List(ctx context.Context, limit, offset int) ([]*entity.Purchase, error)
}
