package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gior-api/pkg/config"
)

// beginTx abre una transacción sobre DATABASE_URL que se descarta al terminar el test.
// Sin DATABASE_URL el test se omite.
func beginTx(t *testing.T) pgx.Tx {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{Driver: "postgres", DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

func createProduct(t *testing.T, q postgres.Querier, name string) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		Code:      "PG-" + uuid.NewString()[:8],
		Name:      name,
		Price:     decimal.NewFromInt(50000),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, postgres.NewProductRepository(q).Create(context.Background(), p))
	return p
}

func createSale(t *testing.T, q postgres.Querier, customerID *int64, at time.Time, lines ...entity.SaleLine) int64 {
	t.Helper()
	ctx := context.Background()
	repo := postgres.NewSaleRepository(q)
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	sale := &entity.Sale{CustomerID: customerID, SellerName: "vendedor1", Total: total, CreatedBy: "vendedor1", CreatedAt: at}
	require.NoError(t, repo.CreateHeader(ctx, sale))
	for i := range lines {
		lines[i].SaleID = sale.ID
		require.NoError(t, repo.CreateLine(ctx, &lines[i]))
	}
	return sale.ID
}

// Las ventas del test se fechan en el futuro para aislarlas de datos existentes en la base.
var future = time.Date(2999, 1, 1, 12, 0, 0, 0, time.UTC)

func TestSaleRepo_TotalsCuentaVentasUnidadesEIngresos(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	repo := postgres.NewSaleRepository(tx)
	shirt := createProduct(t, tx, "Camisa")
	pants := createProduct(t, tx, "Pantalón")

	createSale(t, tx, nil, future,
		entity.SaleLine{ProductID: shirt.ID, Quantity: 3, UnitPrice: decimal.RequireFromString("45000.50")},
		entity.SaleLine{ProductID: pants.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(89900)},
	)
	createSale(t, tx, nil, future.Add(time.Hour),
		entity.SaleLine{ProductID: shirt.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(45000)},
	)
	// Anterior al corte: no cuenta.
	createSale(t, tx, nil, future.Add(-48*time.Hour),
		entity.SaleLine{ProductID: pants.ID, Quantity: 7, UnitPrice: decimal.NewFromInt(1000)},
	)

	totals, err := repo.Totals(ctx, future)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Sales)
	assert.Equal(t, 6, totals.Units)
	assert.True(t, decimal.RequireFromString("359801.50").Equal(totals.Revenue), totals.Revenue.String())

	empty, err := repo.Totals(ctx, future.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Sales)
	assert.Equal(t, 0, empty.Units)
	assert.True(t, empty.Revenue.IsZero())
}

func TestSaleRepo_ListLineViewsRecientesPrimeroConCliente(t *testing.T) {
	tx := beginTx(t)
	ctx := context.Background()
	shirt := createProduct(t, tx, "Camisa")
	shoe := createProduct(t, tx, "Zapato")

	now := time.Now()
	customer := &entity.Customer{Name: "Ana", FirstSurname: "Gómez", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, postgres.NewCustomerRepository(tx).Create(ctx, customer))

	older := createSale(t, tx, nil, future,
		entity.SaleLine{ProductID: shirt.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(45000)},
	)
	newer := createSale(t, tx, &customer.ID, future.Add(time.Minute),
		entity.SaleLine{ProductID: shoe.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(120000)},
		entity.SaleLine{ProductID: shirt.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(45000)},
	)

	views, err := postgres.NewSaleRepository(tx).ListLineViews(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(views), 3)

	// Fechadas en el futuro, las filas del test encabezan el listado.
	top := views[:3]
	assert.Equal(t, newer, top[0].SaleID)
	assert.Equal(t, newer, top[1].SaleID)
	assert.Equal(t, older, top[2].SaleID)
	assert.Less(t, top[0].LineID, top[1].LineID, "líneas de una venta en orden de inserción")

	assert.Equal(t, shoe.ID, top[0].ProductID)
	assert.Equal(t, shoe.Code, top[0].ProductCode)
	assert.Equal(t, "Zapato", top[0].ProductName)
	assert.True(t, decimal.NewFromInt(210000).Equal(top[0].SaleTotal))
	assert.Equal(t, "Ana Gómez", top[0].CustomerName)
	assert.Equal(t, "vendedor1", top[0].SellerName)

	assert.Equal(t, 2, top[1].Quantity)
	assert.True(t, decimal.NewFromInt(45000).Equal(top[1].UnitPrice))
	assert.Empty(t, top[2].CustomerName, "venta de mostrador sin cliente")
}
