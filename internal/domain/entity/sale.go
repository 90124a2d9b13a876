package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalkInCustomerID cliente genérico de mostrador: no se valida contra el registro de clientes.
const WalkInCustomerID int64 = 0

// Sale encabezado de venta. Total es la suma de los subtotales de sus líneas.
type Sale struct {
	ID         int64           `db:"id"`
	CustomerID *int64          `db:"customer_id"` // nil = cliente de mostrador
	SellerName string          `db:"seller_name"`
	Total      decimal.Decimal `db:"total"`
	CreatedBy  string          `db:"created_by"`
	CreatedAt  time.Time       `db:"created_at"`
	Lines      []SaleLine      `db:"-"`
}

// SaleLine línea de venta con el precio unitario vigente al momento de vender.
type SaleLine struct {
	ID        int64           `db:"id"`
	SaleID    int64           `db:"sale_id"`
	ProductID int64           `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

// Subtotal cantidad * precio unitario.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SaleLineView fila de GET /sales: línea unida a producto, encabezado y cliente.
type SaleLineView struct {
	SaleID       int64           `db:"sale_id"`
	LineID       int64           `db:"line_id"`
	CreatedAt    time.Time       `db:"created_at"`
	ProductID    int64           `db:"product_id"`
	ProductCode  string          `db:"product_code"`
	ProductName  string          `db:"product_name"`
	Quantity     int             `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	SaleTotal    decimal.Decimal `db:"sale_total"`
	SellerName   string          `db:"seller_name"`
	CustomerName string          `db:"customer_name"`
}

// SalesTotals agregados de ventas para un periodo.
type SalesTotals struct {
	Sales   int
	Units   int
	Revenue decimal.Decimal
}
