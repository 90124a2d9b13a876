package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse fila de GET /api/inventory (claves del contrato original).
type InventoryItemResponse struct {
	ID          int64           `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Talla       string          `json:"talla"`
	Color       string          `json:"color"`
	Tipo        string          `json:"tipo"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	StockMinimo *int            `json:"stockMinimo,omitempty"`
	StockMaximo *int            `json:"stockMaximo,omitempty"`
	Estado      string          `json:"estado"` // Agotado | Bajo | OK
}

// InventorySummaryResponse GET /api/inventory/summary, calculado en el servidor.
type InventorySummaryResponse struct {
	TotalProductos            int             `json:"totalProductos"`
	TotalUnidades             int             `json:"totalUnidades"`
	Agotados                  int             `json:"agotados"`
	StockBajo                 int             `json:"stockBajo"`
	ValorInventario           decimal.Decimal `json:"valorInventario"`
	ValorInventarioFormateado string          `json:"valorInventarioFormateado"`
}

// CreateProductRequest body para POST /api/inventory.
type CreateProductRequest struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	IDTipo      *int64          `json:"idTipo"`
	IDTalla     *int64          `json:"idTalla"`
	Color       string          `json:"color"`
	Precio      decimal.Decimal `json:"precio"`
	Cantidad    int             `json:"cantidad"` // stock inicial
	StockMinimo *int            `json:"stockMinimo"`
	StockMaximo *int            `json:"stockMaximo"`
}

// UpdateProductRequest body para PUT /api/inventory/:id. El código no se puede modificar.
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre"`
	IDTipo      *int64           `json:"idTipo"`
	IDTalla     *int64           `json:"idTalla"`
	Color       *string          `json:"color"`
	Precio      *decimal.Decimal `json:"precio"`
	StockMinimo *int             `json:"stockMinimo"`
	StockMaximo *int             `json:"stockMaximo"`
}

// RegisterMovementRequest body para POST /api/inventory/movements (movimiento manual).
type RegisterMovementRequest struct {
	IDProducto int64  `json:"idProducto"`
	Tipo       string `json:"tipo"` // ENTRY | EXIT | ADJUSTMENT
	Cantidad   int    `json:"cantidad"`
	Motivo     string `json:"motivo"`
}

// MovementResponse movimiento del kardex.
type MovementResponse struct {
	ID           string    `json:"id"`
	IDProducto   int64     `json:"idProducto"`
	Tipo         string    `json:"tipo"`
	Cantidad     int       `json:"cantidad"`
	ReferenciaID *int64    `json:"referenciaId,omitempty"`
	Motivo       string    `json:"motivo,omitempty"`
	Usuario      string    `json:"usuario"`
	Fecha        time.Time `json:"fecha"`
}

// KardexResponse GET /api/inventory/:id/movements.
type KardexResponse struct {
	IDProducto  int64              `json:"idProducto"`
	StockActual int                `json:"stockActual"`
	SaldoLibro  int                `json:"saldoLibro"` // Σ movimientos con signo
	Movimientos []MovementResponse `json:"movimientos"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en o bajo su punto de reorden.
type ReplenishmentSuggestionDTO struct {
	IDProducto       int64           `json:"idProducto"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	StockActual      int             `json:"stockActual"`
	PuntoReorden     int             `json:"puntoReorden"`
	StockIdeal       int             `json:"stockIdeal"`       // stockMaximo o PuntoReorden * 1.5
	CantidadSugerida int             `json:"cantidadSugerida"` // StockIdeal - StockActual
	ValorEstimado    decimal.Decimal `json:"valorEstimado"`    // CantidadSugerida * precio
	Prioridad        int             `json:"prioridad"`        // 1 = más urgente
}
