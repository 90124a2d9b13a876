package sales_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/application/sales"
	"github.com/jhoicas/gior-api/internal/application/ports"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/gior-api/pkg/logger"
)

var seller = entity.Actor{UserID: "2", Username: "vendedor1", Role: entity.RoleEmployee}

type fixture struct {
	db     *sqlx.DB
	runner *sqlite.TxRunner
	engine *sales.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))
	runner := sqlite.NewTxRunner(db)
	return &fixture{db: db, runner: runner, engine: sales.NewEngine(runner, logger.Nop())}
}

func (f *fixture) product(t *testing.T, code string, qty int) int64 {
	t.Helper()
	ctx := context.Background()
	var id int64
	require.NoError(t, f.runner.Run(ctx, func(repos repository.Repos) error {
		p := &entity.Product{Code: code, Name: code, Price: decimal.NewFromInt(50000)}
		if err := repos.Products.Create(ctx, p); err != nil {
			return err
		}
		if err := repos.Stock.Create(ctx, &entity.Stock{ProductID: p.ID}); err != nil {
			return err
		}
		if qty > 0 {
			if _, err := inventory.NewStockLedger(repos, "seed").ApplyMovement(ctx, p.ID, entity.MovementEntry, qty, nil); err != nil {
				return err
			}
		}
		id = p.ID
		return nil
	}))
	return id
}

func (f *fixture) customer(t *testing.T) int64 {
	t.Helper()
	c := &entity.Customer{FirstSurname: "Gómez", Name: "Ana", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, sqlite.NewCustomerRepository(f.db).Create(context.Background(), c))
	return c.ID
}

func (f *fixture) stock(t *testing.T, productID int64) int {
	t.Helper()
	s, err := sqlite.NewStockRepository(f.db).Get(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s.Quantity
}

func (f *fixture) ledgerBalance(t *testing.T, productID int64) int {
	t.Helper()
	sum, err := sqlite.NewInventoryMovementRepository(f.db).SumSigned(context.Background(), productID)
	require.NoError(t, err)
	return sum
}

func (f *fixture) salesCount(t *testing.T) int {
	t.Helper()
	totals, err := sqlite.NewSaleRepository(f.db).Totals(context.Background(), time.Time{})
	require.NoError(t, err)
	return totals.Sales
}

func (f *fixture) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

var errDiskFull = errors.New("disk I/O error")

// brokenMovements falla al insertar el movimiento número failOn de la transacción.
type brokenMovements struct {
	repository.MovementRepository
	failOn int
	calls  int
}

func (m *brokenMovements) Create(ctx context.Context, mov *entity.Movement) error {
	m.calls++
	if m.calls == m.failOn {
		return errDiskFull
	}
	return m.MovementRepository.Create(ctx, mov)
}

// brokenRunner ejecuta sobre SQLite real pero con el libro de movimientos averiado.
type brokenRunner struct {
	inner  ports.TxRunner
	failOn int
}

func (r *brokenRunner) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	return r.inner.Run(ctx, func(repos repository.Repos) error {
		repos.Movements = &brokenMovements{MovementRepository: repos.Movements, failOn: r.failOn}
		return fn(repos)
	})
}

func walkIn() *int64 {
	id := entity.WalkInCustomerID
	return &id
}

func item(productID int64, qty int, price int64) sales.SaleItemInput {
	return sales.SaleItemInput{ProductID: productID, Quantity: qty, UnitPrice: decimal.NewFromInt(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaStockYRegistraSalidas(t *testing.T) {
	f := newFixture(t)
	p1 := f.product(t, "CAM-1", 10)
	p2 := f.product(t, "PAN-1", 5)
	ctx := context.Background()

	res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p1, 3, 45000), item(p2, 5, 89900)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.LineCount)
	assert.True(t, decimal.NewFromInt(3*45000+5*89900).Equal(res.Total))

	assert.Equal(t, 7, f.stock(t, p1))
	assert.Equal(t, 0, f.stock(t, p2))

	sale, err := sqlite.NewSaleRepository(f.db).GetByID(ctx, res.SaleID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Nil(t, sale.CustomerID, "cliente de mostrador se guarda sin cliente")
	assert.Equal(t, "vendedor1", sale.SellerName)

	movs, err := sqlite.NewInventoryMovementRepository(f.db).ListByReference(ctx, res.SaleID)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementExit, m.Kind)
		require.NotNil(t, m.ReferenceID)
		assert.Equal(t, res.SaleID, *m.ReferenceID)
	}
}

func TestCreateSale_ClienteRegistradoYVendedorExplicito(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "ZAP-1", 2)
	cid := f.customer(t)

	res, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: &cid,
		SellerName: "  María  ",
		Items:      []sales.SaleItemInput{item(p, 1, 120000)},
	})
	require.NoError(t, err)

	sale, err := sqlite.NewSaleRepository(f.db).GetByID(context.Background(), res.SaleID)
	require.NoError(t, err)
	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, cid, *sale.CustomerID)
	assert.Equal(t, "María", sale.SellerName)
}

func TestCreateSale_StockInsuficienteNoEscribeNada(t *testing.T) {
	f := newFixture(t)
	p1 := f.product(t, "A", 10)
	p2 := f.product(t, "B", 1)

	_, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p1, 2, 1000), item(p2, 2, 1000)},
	})

	var entityErr *domain.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, p2, entityErr.ID)
	assert.Equal(t, "Stock insuficiente para producto ID 2", err.Error())

	assert.Equal(t, 10, f.stock(t, p1))
	assert.Equal(t, 1, f.stock(t, p2))
	assert.Equal(t, 10, f.ledgerBalance(t, p1))
	assert.Equal(t, 0, f.salesCount(t))
}

// Si el segundo movimiento falla, encabezado, líneas y el primer movimiento ya escritos
// se deshacen con la transacción.
func TestCreateSale_FallaDeAlmacenamientoRevierteTodo(t *testing.T) {
	f := newFixture(t)
	p1 := f.product(t, "A", 10)
	p2 := f.product(t, "B", 6)
	movementsBefore := f.count(t, "inventory_movements")
	engine := sales.NewEngine(&brokenRunner{inner: f.runner, failOn: 2}, logger.Nop())

	_, err := engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p1, 4, 1000), item(p2, 2, 1000)},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 0, f.count(t, "sales"))
	assert.Equal(t, 0, f.count(t, "sale_lines"))
	assert.Equal(t, movementsBefore, f.count(t, "inventory_movements"))
	assert.Equal(t, 10, f.stock(t, p1))
	assert.Equal(t, 6, f.stock(t, p2))
	assert.Equal(t, 10, f.ledgerBalance(t, p1))
}

func TestCreateSale_LineasRepetidasSumanDemanda(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 5)

	_, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 3, 1000), item(p, 3, 1000)},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, f.stock(t, p))
	assert.Equal(t, 0, f.salesCount(t))
}

func TestCreateSale_ErrorNombraPrimerProductoDelCarrito(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 1)

	_, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(999, 1, 1000), item(p, 5, 1000)},
	})

	var entityErr *domain.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, int64(999), entityErr.ID)
}

func TestCreateSale_ValidacionesPrevias(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 5)
	ctx := context.Background()
	negative := int64(-1)

	_, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{Items: []sales.SaleItemInput{item(p, 1, 1)}})
	assert.ErrorIs(t, err, domain.ErrMissingCustomer)
	assert.Equal(t, "Cliente es requerido", err.Error())

	_, err = f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{CustomerID: &negative, Items: []sales.SaleItemInput{item(p, 1, 1)}})
	assert.ErrorIs(t, err, domain.ErrMissingCustomer)

	_, err = f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{CustomerID: walkIn()})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 1, 1000), item(p, 0, 1000)},
	})
	var entityErr *domain.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
	assert.Equal(t, int64(2), entityErr.ID)

	_, err = f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 1, -5)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLineItem)

	_, err = f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items: []sales.SaleItemInput{
			{ProductID: p, Quantity: 1, UnitPrice: decimal.RequireFromString("45000.005")},
		},
	})
	require.ErrorAs(t, err, &entityErr)
	assert.ErrorIs(t, err, domain.ErrInvalidLineItem)
	assert.Equal(t, int64(1), entityErr.ID)

	assert.Equal(t, 5, f.stock(t, p))
	assert.Equal(t, 0, f.salesCount(t))
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 5)
	unknown := int64(4242)

	_, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: &unknown,
		Items:      []sales.SaleItemInput{item(p, 1, 1000)},
	})

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Equal(t, 5, f.stock(t, p))
}

func TestCreateSale_PrecioCeroPermitido(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "REGALO", 1)

	res, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 1, 0)},
	})
	require.NoError(t, err)
	assert.True(t, res.Total.IsZero())
}

// Ventas concurrentes sobre el mismo producto nunca venden más de lo disponible.
func TestCreateSale_ConcurrenciaSinSobreventa(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 10)

	var ok, rejected int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.CreateSale(context.Background(), seller, sales.CreateSaleInput{
				CustomerID: walkIn(),
				Items:      []sales.SaleItemInput{item(p, 1, 1000)},
			})
			if err == nil {
				atomic.AddInt32(&ok, 1)
				return
			}
			if assert.ErrorIs(t, err, domain.ErrInsufficientStock) {
				atomic.AddInt32(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), ok)
	assert.Equal(t, int32(15), rejected)
	assert.Equal(t, 0, f.stock(t, p))
	assert.Equal(t, 0, f.ledgerBalance(t, p))
	assert.Equal(t, 10, f.salesCount(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteSale_RestauraStockYEliminaVenta(t *testing.T) {
	f := newFixture(t)
	p1 := f.product(t, "A", 10)
	p2 := f.product(t, "B", 4)
	ctx := context.Background()

	res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p2, 4, 1000), item(p1, 6, 1000)},
	})
	require.NoError(t, err)

	rev, err := f.engine.DeleteSale(ctx, seller, res.SaleID)
	require.NoError(t, err)
	assert.Equal(t, 2, rev.LinesReverted)

	assert.Equal(t, 10, f.stock(t, p1))
	assert.Equal(t, 4, f.stock(t, p2))
	assert.Equal(t, 10, f.ledgerBalance(t, p1))

	sale, err := sqlite.NewSaleRepository(f.db).GetByID(ctx, res.SaleID)
	require.NoError(t, err)
	assert.Nil(t, sale)
	lines, err := sqlite.NewSaleRepository(f.db).ListLines(ctx, res.SaleID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	movs, err := sqlite.NewInventoryMovementRepository(f.db).ListByReference(ctx, res.SaleID)
	require.NoError(t, err)
	var reversals int
	for _, m := range movs {
		if m.Kind == entity.MovementReversalEntry {
			reversals++
		}
	}
	assert.Equal(t, 2, reversals, "el libro conserva salidas y reversiones")
}

func TestDeleteSale_FallaAMitadDeReversionConservaLaVenta(t *testing.T) {
	f := newFixture(t)
	p1 := f.product(t, "A", 10)
	p2 := f.product(t, "B", 6)
	ctx := context.Background()
	res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p1, 4, 1000), item(p2, 2, 1000)},
	})
	require.NoError(t, err)
	movementsBefore := f.count(t, "inventory_movements")
	engine := sales.NewEngine(&brokenRunner{inner: f.runner, failOn: 2}, logger.Nop())

	_, err = engine.DeleteSale(ctx, seller, res.SaleID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	sale, err := sqlite.NewSaleRepository(f.db).GetByID(ctx, res.SaleID)
	require.NoError(t, err)
	assert.NotNil(t, sale)
	assert.Equal(t, 2, f.count(t, "sale_lines"))
	assert.Equal(t, movementsBefore, f.count(t, "inventory_movements"))
	assert.Equal(t, 6, f.stock(t, p1))
	assert.Equal(t, 4, f.stock(t, p2))
	assert.Equal(t, 6, f.ledgerBalance(t, p1))

	// Con el almacenamiento sano la anulación completa.
	_, err = f.engine.DeleteSale(ctx, seller, res.SaleID)
	require.NoError(t, err)
	assert.Equal(t, 10, f.stock(t, p1))
	assert.Equal(t, 6, f.stock(t, p2))
}

func TestDeleteSale_VentaInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.DeleteSale(context.Background(), seller, 31337)

	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
	assert.Equal(t, "Venta ID 31337 no encontrada", err.Error())
}

func TestDeleteSale_DobleAnulacionRechazada(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "A", 3)
	ctx := context.Background()
	res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{
		CustomerID: walkIn(),
		Items:      []sales.SaleItemInput{item(p, 3, 1000)},
	})
	require.NoError(t, err)

	_, err = f.engine.DeleteSale(ctx, seller, res.SaleID)
	require.NoError(t, err)
	_, err = f.engine.DeleteSale(ctx, seller, res.SaleID)

	assert.ErrorIs(t, err, domain.ErrSaleNotFound)
	assert.Equal(t, 3, f.stock(t, p))
}

// Secuencia aleatoria de ventas y anulaciones: el stock nunca es negativo, siempre
// coincide con el libro, y al anular todo vuelve a la línea base.
func TestEngine_RepeticionAleatoriaConservaElLibro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	baseline := map[int64]int{}
	var products []int64
	for i, qty := range []int{8, 15, 3, 30} {
		id := f.product(t, string(rune('P'+i)), qty)
		products = append(products, id)
		baseline[id] = qty
	}

	rng := rand.New(rand.NewSource(7))
	var open []int64
	for i := 0; i < 150; i++ {
		if len(open) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(open))
			_, err := f.engine.DeleteSale(ctx, seller, open[idx])
			require.NoError(t, err)
			open = append(open[:idx], open[idx+1:]...)
		} else {
			n := rng.Intn(3) + 1
			items := make([]sales.SaleItemInput, n)
			for j := range items {
				items[j] = item(products[rng.Intn(len(products))], rng.Intn(5)+1, 1000)
			}
			res, err := f.engine.CreateSale(ctx, seller, sales.CreateSaleInput{CustomerID: walkIn(), Items: items})
			if err == nil {
				open = append(open, res.SaleID)
			} else {
				require.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		}

		for _, pid := range products {
			qty := f.stock(t, pid)
			require.GreaterOrEqual(t, qty, 0)
			require.Equal(t, qty, f.ledgerBalance(t, pid))
		}
	}

	for _, id := range open {
		_, err := f.engine.DeleteSale(ctx, seller, id)
		require.NoError(t, err)
	}
	for _, pid := range products {
		assert.Equal(t, baseline[pid], f.stock(t, pid))
	}
	assert.Equal(t, 0, f.salesCount(t))
}
