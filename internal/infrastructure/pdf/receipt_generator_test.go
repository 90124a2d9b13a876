package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/application/sales"
	"github.com/jhoicas/gior-api/internal/infrastructure/pdf"
)

func TestReceiptGenerator_GeneraPDF(t *testing.T) {
	out, err := pdf.NewReceiptGenerator().Generate(sales.ReceiptData{
		StoreName:    "Gior",
		SaleID:       12,
		Date:         time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
		SellerName:   "vendedor1",
		CustomerName: "Cliente de mostrador",
		Lines: []sales.ReceiptLine{
			{Code: "CAM-1", Name: "Camisa lino", Quantity: 2, UnitPrice: decimal.NewFromInt(45000), Subtotal: decimal.NewFromInt(90000)},
		},
		Total: decimal.NewFromInt(90000),
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}
