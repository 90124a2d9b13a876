package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del carrito.
type SaleItemRequest struct {
	IDProducto     int64           `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CreateSaleRequest body para POST /api/sales.
// IDCliente es obligatorio; 0 = cliente de mostrador.
type CreateSaleRequest struct {
	Items     []SaleItemRequest `json:"items"`
	Vendedor  string            `json:"vendedor"`
	IDCliente *int64            `json:"idCliente"`
}

// CreateSaleResponse respuesta de POST /api/sales.
type CreateSaleResponse struct {
	Message    string          `json:"message"`
	ID         int64           `json:"id"`
	ItemsCount int             `json:"itemsCount"`
	Total      decimal.Decimal `json:"total"`
}

// SaleLineRowResponse fila de GET /api/sales (una por línea de venta).
type SaleLineRowResponse struct {
	IDVenta        int64           `json:"idVenta"`
	ID             int64           `json:"id"`
	Fecha          time.Time       `json:"fecha"`
	IDProducto     int64           `json:"idProducto"`
	CodigoProducto string          `json:"codigoProducto"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TotalVenta     decimal.Decimal `json:"totalVenta"`
	Vendedor       string          `json:"vendedor"`
	Detalle        string          `json:"detalle"` // nombre del cliente
}

// SaleLineResponse línea dentro de SaleResponse.
type SaleLineResponse struct {
	ID             int64           `json:"id"`
	IDProducto     int64           `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// SaleResponse GET /api/sales/:id.
type SaleResponse struct {
	ID        int64              `json:"id"`
	IDCliente *int64             `json:"idCliente"`
	Vendedor  string             `json:"vendedor"`
	Total     decimal.Decimal    `json:"total"`
	Fecha     time.Time          `json:"fecha"`
	Items     []SaleLineResponse `json:"items"`
}

// SalesSummaryDTO GET /api/sales/summary: métricas de ventas calculadas en el servidor.
type SalesSummaryDTO struct {
	TotalVentas      int             `json:"totalVentas"`
	UnidadesVendidas int             `json:"unidadesVendidas"`
	Ingresos         decimal.Decimal `json:"ingresos"`
	VentasHoy        int             `json:"ventasHoy"`
	UnidadesHoy      int             `json:"unidadesHoy"`
	IngresosHoy      decimal.Decimal `json:"ingresosHoy"`
	VentasMes        int             `json:"ventasMes"`
	IngresosMes      decimal.Decimal `json:"ingresosMes"`
	Periodo          string          `json:"periodo"` // ej: "Febrero 2026"
}
