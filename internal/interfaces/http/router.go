package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gior-api/internal/application/auth"
	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/application/sales"
	"github.com/jhoicas/gior-api/internal/application/usecase"
	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	InventoryUC   *inventory.UseCase
	Replenishment *inventory.ReplenishmentUseCase
	SalesEngine   *sales.Engine
	SalesQuery    *sales.QueryUseCase
	SalesReceipt  *sales.ReceiptUseCase
	CatalogUC     *usecase.CatalogUseCase
	CustomerUC    *usecase.CustomerUseCase
	SupplierUC    *usecase.SupplierUseCase
	PurchaseUC    *usecase.PurchaseUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Replenishment)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/summary", inventoryHandler.Summary)
	invGroup.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Delete("/:id", adminOnly, inventoryHandler.Delete)
	invGroup.Get("/:id/movements", inventoryHandler.Kardex)

	// Ventas
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesEngine, deps.SalesQuery, deps.SalesReceipt)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/summary", salesHandler.Summary)
	salesGroup.Get("/:id", salesHandler.Get)
	salesGroup.Get("/:id/receipt", salesHandler.Receipt)
	salesGroup.Delete("/:id", adminOnly, salesHandler.Delete)

	// Catálogos
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/product-types", catalogHandler.ListProductTypes)
	protected.Post("/product-types", catalogHandler.CreateProductType)
	protected.Get("/sizes", catalogHandler.ListSizes)
	protected.Post("/sizes", catalogHandler.CreateSize)

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Compras
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
}
