package entity

import "time"

// Estados de stock derivados en el servidor.
const (
	StockStatusOut = "Agotado"
	StockStatusLow = "Bajo"
	StockStatusOK  = "OK"
)

// DefaultLowStockThreshold umbral de stock bajo cuando el producto no define stock mínimo.
const DefaultLowStockThreshold = 5

// Stock existencias actuales de un producto (una fila por producto).
// Quantity solo se modifica a través del libro de movimientos.
type Stock struct {
	ProductID int64     `db:"product_id"`
	Quantity  int       `db:"quantity"`
	MinStock  *int      `db:"min_stock"`
	MaxStock  *int      `db:"max_stock"`
	UpdatedAt time.Time `db:"updated_at"`
}

// StockStatus devuelve Agotado, Bajo u OK para una cantidad.
// Si minStock está definido se usa como umbral; si no, threshold.
func StockStatus(quantity int, minStock *int, threshold int) string {
	limit := threshold
	if minStock != nil {
		limit = *minStock
	}
	switch {
	case quantity <= 0:
		return StockStatusOut
	case quantity <= limit:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
