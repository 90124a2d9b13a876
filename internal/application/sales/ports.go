package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptGenerator genera el comprobante de venta (PDF).
type ReceiptGenerator interface {
	Generate(data ReceiptData) ([]byte, error)
}

// ReceiptData datos necesarios para renderizar el comprobante.
type ReceiptData struct {
	StoreName    string
	SaleID       int64
	Date         time.Time
	SellerName   string
	CustomerName string
	CustomerID   *int64
	Lines        []ReceiptLine
	Total        decimal.Decimal
}

// ReceiptLine línea del comprobante con datos del producto.
type ReceiptLine struct {
	Code      string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
