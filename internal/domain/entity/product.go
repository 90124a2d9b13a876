package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Code es único e inmutable después de la creación.
type Product struct {
	ID            int64           `db:"id"`
	Code          string          `db:"code"`
	Name          string          `db:"name"`
	ProductTypeID *int64          `db:"product_type_id"`
	SizeID        *int64          `db:"size_id"`
	Color         string          `db:"color"`
	Price         decimal.Decimal `db:"price"` // precio de venta, nunca negativo
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// InventoryItem fila de GET /inventory: producto + stock + tipo + talla.
type InventoryItem struct {
	ProductID   int64           `db:"product_id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	ProductType string          `db:"product_type"`
	Size        string          `db:"size"`
	Color       string          `db:"color"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
	MinStock    *int            `db:"min_stock"`
	MaxStock    *int            `db:"max_stock"`
}

// Value valor del inventario de la fila (cantidad * precio).
func (i InventoryItem) Value() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
