package inventory_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/internal/infrastructure/sqlite"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return db
}

// seedProduct crea un producto con stock inicial registrado como ENTRY.
func seedProduct(t *testing.T, runner *sqlite.TxRunner, code string, qty int) int64 {
	t.Helper()
	ctx := context.Background()
	var id int64
	err := runner.Run(ctx, func(repos repository.Repos) error {
		p := &entity.Product{Code: code, Name: "Producto " + code, Price: decimal.NewFromInt(10000)}
		if err := repos.Products.Create(ctx, p); err != nil {
			return err
		}
		if err := repos.Stock.Create(ctx, &entity.Stock{ProductID: p.ID}); err != nil {
			return err
		}
		if qty > 0 {
			if _, err := inventory.NewStockLedger(repos, "test").ApplyMovement(ctx, p.ID, entity.MovementEntry, qty, nil); err != nil {
				return err
			}
		}
		id = p.ID
		return nil
	})
	require.NoError(t, err)
	return id
}

func applyInTx(runner *sqlite.TxRunner, productID int64, kind entity.MovementKind, qty int) error {
	ctx := context.Background()
	return runner.Run(ctx, func(repos repository.Repos) error {
		_, err := inventory.NewStockLedger(repos, "test").ApplyMovement(ctx, productID, kind, qty, nil)
		return err
	})
}

func stockOf(t *testing.T, db *sqlx.DB, productID int64) int {
	t.Helper()
	s, err := sqlite.NewStockRepository(db).Get(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s.Quantity
}

func TestStockLedger_SalidaDescuentaYRegistraMovimiento(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)
	pid := seedProduct(t, runner, "CAM-001", 10)

	require.NoError(t, applyInTx(runner, pid, entity.MovementExit, 4))

	assert.Equal(t, 6, stockOf(t, db, pid))
	movs, err := sqlite.NewInventoryMovementRepository(db).ListByProduct(context.Background(), pid)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementEntry, movs[0].Kind)
	assert.Equal(t, entity.MovementExit, movs[1].Kind)
	assert.Equal(t, 4, movs[1].Quantity)
	assert.Equal(t, "test", movs[1].CreatedBy)
	assert.NotEmpty(t, movs[1].ID)
}

func TestStockLedger_SalidaMayorAlStock_NoModificaNada(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)
	pid := seedProduct(t, runner, "CAM-002", 3)

	err := applyInTx(runner, pid, entity.MovementExit, 4)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, stockOf(t, db, pid))
	sum, err := sqlite.NewInventoryMovementRepository(db).SumSigned(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, 3, sum)
}

func TestStockLedger_ProductoInexistente(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)

	err := applyInTx(runner, 999, entity.MovementEntry, 1)

	var entityErr *domain.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, int64(999), entityErr.ID)
}

func TestStockLedger_RechazaCantidadYTipoInvalidos(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)
	pid := seedProduct(t, runner, "CAM-003", 5)

	assert.ErrorIs(t, applyInTx(runner, pid, entity.MovementExit, 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, applyInTx(runner, pid, entity.MovementEntry, -2), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, applyInTx(runner, pid, entity.MovementKind("TRANSFER"), 1), domain.ErrInvalidInput)
	assert.Equal(t, 5, stockOf(t, db, pid))
}

func TestStockLedger_SalidaHastaCeroPermitida(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)
	pid := seedProduct(t, runner, "CAM-004", 2)

	require.NoError(t, applyInTx(runner, pid, entity.MovementExit, 2))
	assert.Equal(t, 0, stockOf(t, db, pid))
}

// El stock siempre es igual a la suma con signo del libro, aun con movimientos rechazados.
func TestStockLedger_StockIgualASumaDelLibro(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)
	pid := seedProduct(t, runner, "CAM-005", 20)
	kinds := []entity.MovementKind{
		entity.MovementEntry, entity.MovementExit, entity.MovementAdjustment, entity.MovementReversalEntry,
	}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		kind := kinds[rng.Intn(len(kinds))]
		if rng.Intn(2) == 0 {
			kind = entity.MovementExit
		}
		_ = applyInTx(runner, pid, kind, rng.Intn(8)+1)

		qty := stockOf(t, db, pid)
		sum, err := sqlite.NewInventoryMovementRepository(db).SumSigned(context.Background(), pid)
		require.NoError(t, err)
		require.GreaterOrEqual(t, qty, 0)
		require.Equal(t, qty, sum, "iteración %d", i)
	}
}

func TestStockLedger_CurrentStock(t *testing.T) {
	db := newTestDB(t)
	runner := sqlite.NewTxRunner(db)
	pid := seedProduct(t, runner, "CAM-006", 7)
	ledger := inventory.NewStockLedger(sqlite.NewRepos(db), "test")

	qty, err := ledger.CurrentStock(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	_, err = ledger.CurrentStock(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
