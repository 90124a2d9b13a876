package repository

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por producto.
// Usado dentro de transacciones para garantizar consistencia. Get y GetForUpdate
// devuelven (nil, nil) si el producto no tiene fila de stock.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	Get(ctx context.Context, productID int64) (*entity.Stock, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, productID int64) (*entity.Stock, error)
	UpdateQuantity(ctx context.Context, productID int64, quantity int) error
	UpdateThresholds(ctx context.Context, productID int64, minStock, maxStock *int) error
	Delete(ctx context.Context, productID int64) error
}
