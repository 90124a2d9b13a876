package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/application/sales"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/infrastructure/sqlite"
)

func TestQueryUseCase_ListYSummary(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "CAM-1", 10)
	cid := f.customer(t)
	ctx := context.Background()

	_, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 2, 45000)},
	})
	require.NoError(t, err)
	_, err = f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: &cid,
		Items:      []sales.SaleItemInput{item(p, 1, 40000)},
	})
	require.NoError(t, err)

	uc := sales.NewQueryUseCase(sqlite.NewSaleRepository(f.db))
	rows, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana Gómez", rows[0].Detalle, "la venta más reciente primero")
	assert.Equal(t, "Cliente de mostrador", rows[1].Detalle)
	assert.Equal(t, "CAM-1", rows[1].CodigoProducto)
	assert.True(t, decimal.NewFromInt(90000).Equal(rows[1].Subtotal))

	summary, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalVentas)
	assert.Equal(t, 3, summary.UnidadesVendidas)
	assert.True(t, decimal.NewFromInt(130000).Equal(summary.Ingresos))
	assert.Equal(t, 2, summary.VentasHoy)
	assert.Equal(t, 2, summary.VentasMes)
	assert.NotEmpty(t, summary.Periodo)
}

func TestQueryUseCase_Get(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 4)
	ctx := context.Background()
	res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 4, 2500)},
	})
	require.NoError(t, err)

	uc := sales.NewQueryUseCase(sqlite.NewSaleRepository(f.db))
	sale, err := uc.Get(ctx, res.SaleID)
	require.NoError(t, err)
	assert.Nil(t, sale.IDCliente)
	require.Len(t, sale.Items, 1)
	assert.True(t, decimal.NewFromInt(10000).Equal(sale.Items[0].Subtotal))
	assert.WithinDuration(t, time.Now(), sale.Fecha, time.Minute)

	_, err = uc.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}

type fakeReceipt struct {
	got sales.ReceiptData
}

func (g *fakeReceipt) Generate(data sales.ReceiptData) ([]byte, error) {
	g.got = data
	return []byte("%PDF-fake"), nil
}

func TestReceiptUseCase_ArmaDatosDelComprobante(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "ZAP-9", 2)
	ctx := context.Background()
	res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 2, 75000)},
	})
	require.NoError(t, err)

	gen := &fakeReceipt{}
	uc := sales.NewReceiptUseCase(
		sqlite.NewSaleRepository(f.db),
		sqlite.NewCustomerRepository(f.db),
		sqlite.NewProductRepository(f.db),
		gen,
		"Gior",
	)
	pdf, filename, err := uc.DownloadReceipt(ctx, res.SaleID)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, filename, ".pdf")
	assert.Equal(t, "Gior", gen.got.StoreName)
	assert.Equal(t, "Cliente de mostrador", gen.got.CustomerName)
	require.Len(t, gen.got.Lines, 1)
	assert.Equal(t, "ZAP-9", gen.got.Lines[0].Code)
	assert.True(t, decimal.NewFromInt(150000).Equal(gen.got.Total))

	_, _, err = uc.DownloadReceipt(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
}
