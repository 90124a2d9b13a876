package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de compra.
type PurchaseItemRequest struct {
	IDProducto    int64           `json:"idProducto"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	IDProveedor int64                 `json:"idProveedor"`
	Items       []PurchaseItemRequest `json:"items"`
}

// PurchaseResponse compra en respuestas.
type PurchaseResponse struct {
	ID          int64           `json:"id"`
	IDProveedor int64           `json:"idProveedor"`
	Total       decimal.Decimal `json:"total"`
	Usuario     string          `json:"usuario"`
	Fecha       time.Time       `json:"fecha"`
	ItemsCount  int             `json:"itemsCount,omitempty"`
}
