package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre ventas (listado, detalle y resumen).
type QueryUseCase struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo, now: time.Now}
}

// List devuelve una fila por línea de venta con nombres de producto y cliente.
func (uc *QueryUseCase) List(ctx context.Context) ([]dto.SaleLineRowResponse, error) {
	views, err := uc.saleRepo.ListLineViews(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]dto.SaleLineRowResponse, 0, len(views))
	for _, v := range views {
		customer := v.CustomerName
		if customer == "" {
			customer = "Cliente de mostrador"
		}
		out = append(out, dto.SaleLineRowResponse{
			IDVenta:        v.SaleID,
			ID:             v.LineID,
			Fecha:          v.CreatedAt,
			IDProducto:     v.ProductID,
			CodigoProducto: v.ProductCode,
			NombreProducto: v.ProductName,
			Cantidad:       v.Quantity,
			PrecioUnitario: v.UnitPrice,
			Subtotal:       v.UnitPrice.Mul(decimalFromInt(v.Quantity)),
			TotalVenta:     v.SaleTotal,
			Vendedor:       v.SellerName,
			Detalle:        customer,
		})
	}
	return out, nil
}

// Get devuelve el encabezado y las líneas de una venta.
func (uc *QueryUseCase) Get(ctx context.Context, saleID int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if sale == nil {
		return nil, domain.NewEntityError(domain.ErrSaleNotFound, saleID)
	}
	lines, err := uc.saleRepo.ListLines(ctx, saleID)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return toSaleResponse(sale, lines), nil
}

func toSaleResponse(sale *entity.Sale, lines []entity.SaleLine) *dto.SaleResponse {
	items := make([]dto.SaleLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.SaleLineResponse{
			ID:             l.ID,
			IDProducto:     l.ProductID,
			Cantidad:       l.Quantity,
			PrecioUnitario: l.UnitPrice,
			Subtotal:       l.Subtotal(),
		})
	}
	return &dto.SaleResponse{
		ID:        sale.ID,
		IDCliente: sale.CustomerID,
		Vendedor:  sale.SellerName,
		Total:     sale.Total,
		Fecha:     sale.CreatedAt,
		Items:     items,
	}
}

// Summary resumen de ventas: histórico, del día y del mes en curso.
//
// Tres consultas en paralelo:
//  1. Totals(todas)  → TotalVentas, UnidadesVendidas, Ingresos
//  2. Totals(hoy)    → VentasHoy, UnidadesHoy, IngresosHoy
//  3. Totals(mes)    → VentasMes, IngresosMes
func (uc *QueryUseCase) Summary(ctx context.Context) (*dto.SalesSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		totals entity.SalesTotals
		err    error
	}
	allCh := make(chan totalsResult, 1)
	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)

	go func() {
		t, err := uc.saleRepo.Totals(ctx, time.Time{})
		allCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.saleRepo.Totals(ctx, todayStart)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.saleRepo.Totals(ctx, monthStart)
		monthCh <- totalsResult{t, err}
	}()

	all := <-allCh
	today := <-todayCh
	month := <-monthCh

	if all.err != nil {
		return nil, domain.StorageFailure(fmt.Errorf("resumen: totales: %w", all.err))
	}
	if today.err != nil {
		return nil, domain.StorageFailure(fmt.Errorf("resumen: ventas de hoy: %w", today.err))
	}
	if month.err != nil {
		return nil, domain.StorageFailure(fmt.Errorf("resumen: ventas del mes: %w", month.err))
	}

	return &dto.SalesSummaryDTO{
		TotalVentas:      all.totals.Sales,
		UnidadesVendidas: all.totals.Units,
		Ingresos:         all.totals.Revenue.Round(2),
		VentasHoy:        today.totals.Sales,
		UnidadesHoy:      today.totals.Units,
		IngresosHoy:      today.totals.Revenue.Round(2),
		VentasMes:        month.totals.Sales,
		IngresosMes:      month.totals.Revenue.Round(2),
		Periodo:          monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
