package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra a proveedor; cada línea genera una ENTRY en el libro.
type Purchase struct {
	ID         int64           `db:"id"`
	SupplierID int64           `db:"supplier_id"`
	Total      decimal.Decimal `db:"total"`
	CreatedBy  string          `db:"created_by"`
	CreatedAt  time.Time       `db:"created_at"`
	Lines      []PurchaseLine  `db:"-"`
}

// PurchaseLine línea de compra.
type PurchaseLine struct {
	ID         int64           `db:"id"`
	PurchaseID int64           `db:"purchase_id"`
	ProductID  int64           `db:"product_id"`
	Quantity   int             `db:"quantity"`
	UnitCost   decimal.Decimal `db:"unit_cost"`
}
