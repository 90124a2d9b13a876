// Package sales contiene el motor transaccional de ventas: registro de ventas con
// varias líneas y su anulación con reversión de stock, siempre en una sola transacción.
package sales

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/application/ports"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/pkg/logger"
	"github.com/jhoicas/gior-api/pkg/money"
)

const tracerName = "github.com/jhoicas/gior-api/sales"

// SaleItemInput línea del carrito.
type SaleItemInput struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateSaleInput entrada de CreateSale. CustomerID nil = falta el cliente;
// entity.WalkInCustomerID = cliente de mostrador (sin validación en el registro).
type CreateSaleInput struct {
	CustomerID *int64
	SellerName string
	Items      []SaleItemInput
}

// SaleResult resultado de una venta confirmada.
type SaleResult struct {
	SaleID    int64
	LineCount int
	Total     decimal.Decimal
}

// ReversalResult resultado de la anulación de una venta.
type ReversalResult struct {
	SaleID        int64
	LinesReverted int
}

// Engine registra y anula ventas. Cada operación es una única transacción:
// validación de stock, encabezado, líneas y movimientos se confirman juntos o no se confirma nada.
type Engine struct {
	txRunner ports.TxRunner
	log      *logger.Logger
	tracer   trace.Tracer
	metrics  engineMetrics
	now      func() time.Time
}

// NewEngine construye el motor de ventas.
func NewEngine(txRunner ports.TxRunner, log *logger.Logger) *Engine {
	return &Engine{
		txRunner: txRunner,
		log:      log,
		tracer:   otel.Tracer(tracerName),
		metrics:  newEngineMetrics(),
		now:      time.Now,
	}
}

// CreateSale valida el carrito, abre la transacción, verifica stock de todas las líneas
// antes de escribir, inserta encabezado y líneas, y registra una salida (EXIT) por línea.
func (e *Engine) CreateSale(ctx context.Context, actor entity.Actor, in CreateSaleInput) (*SaleResult, error) {
	ctx, span := e.tracer.Start(ctx, "sales.create")
	defer span.End()
	span.SetAttributes(attribute.Int("sale.items", len(in.Items)))

	res, err := e.createSale(ctx, actor, in)
	if err != nil {
		e.reject(ctx, span, "create", err)
		e.log.Warn().Err(err).Str("user", actor.Username).Int("items", len(in.Items)).Msg("venta rechazada")
		return nil, err
	}

	span.SetAttributes(attribute.Int64("sale.id", res.SaleID))
	e.metrics.created.Add(ctx, 1)
	e.log.Info().
		Int64("sale_id", res.SaleID).
		Int("lines", res.LineCount).
		Str("total", res.Total.String()).
		Str("user", actor.Username).
		Msg("venta registrada")
	return res, nil
}

func (e *Engine) createSale(ctx context.Context, actor entity.Actor, in CreateSaleInput) (*SaleResult, error) {
	if err := validateSale(in); err != nil {
		return nil, err
	}

	seller := strings.TrimSpace(in.SellerName)
	if seller == "" {
		seller = actor.Username
	}
	var customerID *int64
	if *in.CustomerID != entity.WalkInCustomerID {
		id := *in.CustomerID
		customerID = &id
	}

	lines := make([]entity.SaleLine, len(in.Items))
	total := decimal.Zero
	for i, it := range in.Items {
		lines[i] = entity.SaleLine{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		total = total.Add(lines[i].Subtotal())
	}

	var result *SaleResult
	err := e.txRunner.Run(ctx, func(repos repository.Repos) error {
		if customerID != nil {
			ok, err := repos.Customers.Exists(ctx, *customerID)
			if err != nil {
				return domain.StorageFailure(err)
			}
			if !ok {
				return domain.NewEntityError(domain.ErrCustomerNotFound, *customerID)
			}
		}

		// Verificación previa sobre todo el carrito: ninguna escritura ocurre si una línea falla.
		if err := checkStock(ctx, repos.Stock, in.Items); err != nil {
			return err
		}

		sale := &entity.Sale{
			CustomerID: customerID,
			SellerName: seller,
			Total:      total,
			CreatedBy:  actor.Username,
			CreatedAt:  e.now(),
		}
		if err := repos.Sales.CreateHeader(ctx, sale); err != nil {
			return domain.StorageFailure(err)
		}

		ledger := inventory.NewStockLedger(repos, actor.Username)
		ref := sale.ID
		for i := range lines {
			lines[i].SaleID = sale.ID
			if err := repos.Sales.CreateLine(ctx, &lines[i]); err != nil {
				return domain.StorageFailure(err)
			}
			if _, err := ledger.ApplyMovement(ctx, lines[i].ProductID, entity.MovementExit, lines[i].Quantity, &ref); err != nil {
				return err
			}
		}

		result = &SaleResult{SaleID: sale.ID, LineCount: len(lines), Total: total}
		return nil
	})
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return result, nil
}

// validateSale precondiciones fuera de la transacción.
func validateSale(in CreateSaleInput) error {
	if in.CustomerID == nil || *in.CustomerID < 0 {
		return domain.ErrMissingCustomer
	}
	if len(in.Items) == 0 {
		return domain.ErrEmptyCart
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 || !money.ValidAmount(it.UnitPrice) {
			return domain.NewEntityError(domain.ErrInvalidLineItem, int64(i+1))
		}
	}
	return nil
}

// checkStock bloquea las filas de stock del carrito en orden ascendente de producto
// y verifica que la demanda total por producto no supere lo disponible.
// El error nombra el primer producto en fallar según el orden del carrito.
func checkStock(ctx context.Context, stockRepo repository.StockRepository, items []SaleItemInput) error {
	demand := make(map[int64]int, len(items))
	for _, it := range items {
		demand[it.ProductID] += it.Quantity
	}
	ids := make([]int64, 0, len(demand))
	for id := range demand {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	available := make(map[int64]*entity.Stock, len(ids))
	for _, id := range ids {
		stock, err := stockRepo.GetForUpdate(ctx, id)
		if err != nil {
			return domain.StorageFailure(err)
		}
		available[id] = stock
	}

	for _, it := range items {
		stock := available[it.ProductID]
		if stock == nil {
			return domain.NewEntityError(domain.ErrProductNotFound, it.ProductID)
		}
		if stock.Quantity < demand[it.ProductID] {
			return domain.NewEntityError(domain.ErrInsufficientStock, it.ProductID)
		}
	}
	return nil
}

// DeleteSale anula una venta: devuelve al stock la cantidad de cada línea con un
// movimiento REVERSAL_ENTRY que referencia la venta, y elimina líneas y encabezado.
func (e *Engine) DeleteSale(ctx context.Context, actor entity.Actor, saleID int64) (*ReversalResult, error) {
	ctx, span := e.tracer.Start(ctx, "sales.delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("sale.id", saleID))

	res, err := e.deleteSale(ctx, actor, saleID)
	if err != nil {
		e.reject(ctx, span, "delete", err)
		e.log.Warn().Err(err).Int64("sale_id", saleID).Str("user", actor.Username).Msg("anulación rechazada")
		return nil, err
	}

	e.metrics.reversed.Add(ctx, 1)
	e.log.Info().
		Int64("sale_id", saleID).
		Int("lines", res.LinesReverted).
		Str("user", actor.Username).
		Msg("venta anulada, stock revertido")
	return res, nil
}

func (e *Engine) deleteSale(ctx context.Context, actor entity.Actor, saleID int64) (*ReversalResult, error) {
	var result *ReversalResult
	err := e.txRunner.Run(ctx, func(repos repository.Repos) error {
		// Sin líneas no prueba que la venta no exista: se valida el encabezado.
		sale, err := repos.Sales.GetByID(ctx, saleID)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if sale == nil {
			return domain.NewEntityError(domain.ErrSaleNotFound, saleID)
		}

		lines, err := repos.Sales.ListLines(ctx, saleID)
		if err != nil {
			return domain.StorageFailure(err)
		}
		// Mismo orden de bloqueo que CreateSale.
		sort.SliceStable(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

		ledger := inventory.NewStockLedger(repos, actor.Username)
		ref := saleID
		for _, l := range lines {
			if _, err := ledger.ApplyMovement(ctx, l.ProductID, entity.MovementReversalEntry, l.Quantity, &ref); err != nil {
				return err
			}
		}

		if err := repos.Sales.DeleteLines(ctx, saleID); err != nil {
			return domain.StorageFailure(err)
		}
		if err := repos.Sales.Delete(ctx, saleID); err != nil {
			return domain.StorageFailure(err)
		}
		result = &ReversalResult{SaleID: saleID, LinesReverted: len(lines)}
		return nil
	})
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return result, nil
}
