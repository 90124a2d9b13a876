package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/application/usecase"
)

// CatalogHandler tipos de producto y tallas.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProductTypes godoc
// @Summary  Listar tipos de producto
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.CatalogItemResponse
// @Router   /api/product-types [get]
func (h *CatalogHandler) ListProductTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListProductTypes(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProductType godoc
// @Summary  Crear tipo de producto
// @Tags     catalog
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CatalogItemRequest  true  "nombre"
// @Success  201   {object}  dto.CatalogItemResponse
// @Failure  409   {object}  dto.ErrorResponse
// @Router   /api/product-types [post]
func (h *CatalogHandler) CreateProductType(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateProductType(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSizes godoc
// @Summary  Listar tallas
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.CatalogItemResponse
// @Router   /api/sizes [get]
func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	out, err := h.uc.ListSizes(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateSize godoc
// @Summary  Crear talla
// @Tags     catalog
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CatalogItemRequest  true  "nombre"
// @Success  201   {object}  dto.CatalogItemResponse
// @Failure  409   {object}  dto.ErrorResponse
// @Router   /api/sizes [post]
func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSize(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
