package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/application/sales"
)

// SalesHandler registro, consulta y anulación de ventas (protegido).
type SalesHandler struct {
	engine  *sales.Engine
	query   *sales.QueryUseCase
	receipt *sales.ReceiptUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(engine *sales.Engine, query *sales.QueryUseCase, receipt *sales.ReceiptUseCase) *SalesHandler {
	return &SalesHandler{engine: engine, query: query, receipt: receipt}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Valida stock de todas las líneas, registra encabezado y líneas y descuenta stock en una sola transacción.
// @Description  idCliente es obligatorio; 0 = cliente de mostrador.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "items, vendedor, idCliente"
// @Success      200   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	items := make([]sales.SaleItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, sales.SaleItemInput{
			ProductID: it.IDProducto,
			Quantity:  it.Cantidad,
			UnitPrice: it.PrecioUnitario,
		})
	}
	res, err := h.engine.CreateSale(c.UserContext(), ActorFrom(c), sales.CreateSaleInput{
		CustomerID: in.IDCliente,
		SellerName: in.Vendedor,
		Items:      items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CreateSaleResponse{
		Message:    "Venta registrada exitosamente",
		ID:         res.SaleID,
		ItemsCount: res.LineCount,
		Total:      res.Total,
	})
}

// List godoc
// @Summary      Listar ventas
// @Description  Una fila por línea de venta, las más recientes primero.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SaleLineRowResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	rows, err := h.query.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}

// Get godoc
// @Summary      Obtener venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	sale, err := h.query.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Delete godoc
// @Summary      Anular venta
// @Description  Devuelve al stock la cantidad de cada línea (REVERSAL_ENTRY) y elimina la venta. Solo admin.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if _, err := h.engine.DeleteSale(c.UserContext(), ActorFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Venta eliminada y stock revertido correctamente"})
}

// Summary godoc
// @Summary      Resumen de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryDTO
// @Router       /api/sales/summary [get]
func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	out, err := h.query.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, filename, err := h.receipt.DownloadReceipt(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
