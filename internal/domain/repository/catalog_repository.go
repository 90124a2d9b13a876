package repository

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// CatalogRepository tipos de producto y tallas (datos de referencia).
type CatalogRepository interface {
	ListProductTypes(ctx context.Context) ([]*entity.ProductType, error)
	CreateProductType(ctx context.Context, pt *entity.ProductType) error
	ProductTypeExists(ctx context.Context, id int64) (bool, error)
	ListSizes(ctx context.Context) ([]*entity.Size, error)
	CreateSize(ctx context.Context, size *entity.Size) error
	SizeExists(ctx context.Context, id int64) (bool, error)
}
