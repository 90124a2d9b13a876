package repository

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// GetByID y GetByCode devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// Update modifica nombre, tipo, talla, color y precio; nunca el código.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	// IsReferenced indica si el producto tiene líneas de venta, de compra o movimientos.
	IsReferenced(ctx context.Context, id int64) (bool, error)
	ListInventory(ctx context.Context) ([]*entity.InventoryItem, error)
}
