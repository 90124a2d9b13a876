package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gior-api/docs"
	"github.com/jhoicas/gior-api/internal/application/auth"
	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/application/sales"
	"github.com/jhoicas/gior-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/gior-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gior-api/internal/infrastructure/store"
	"github.com/jhoicas/gior-api/internal/infrastructure/telemetry"
	httpRouter "github.com/jhoicas/gior-api/internal/interfaces/http"
	"github.com/jhoicas/gior-api/pkg/config"
	"github.com/jhoicas/gior-api/pkg/logger"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, version)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar OpenTelemetry")
	}

	db, err := store.Open(ctx, cfg.DB, false)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a base de datos")
	}
	defer db.Close()

	repos := db.Repos
	engine := sales.NewEngine(db.Runner, log)
	salesQuery := sales.NewQueryUseCase(repos.Sales)
	receiptUC := sales.NewReceiptUseCase(
		repos.Sales, repos.Customers, repos.Products, infrapdf.NewReceiptGenerator(), cfg.App.StoreName,
	)
	inventoryUC := inventory.NewUseCase(
		db.Runner, repos.Products, repos.Stock, repos.Movements, repos.Catalog, cfg.Inventory.LowStockThreshold,
	)
	replenishmentUC := inventory.NewReplenishmentUseCase(repos.Products, cfg.Inventory.LowStockThreshold)
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "GIOR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": db.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		InventoryUC:   inventoryUC,
		Replenishment: replenishmentUC,
		SalesEngine:   engine,
		SalesQuery:    salesQuery,
		SalesReceipt:  receiptUC,
		CatalogUC:     usecase.NewCatalogUseCase(repos.Catalog),
		CustomerUC:    usecase.NewCustomerUseCase(repos.Customers),
		SupplierUC:    usecase.NewSupplierUseCase(repos.Suppliers),
		PurchaseUC:    usecase.NewPurchaseUseCase(db.Runner, repos.Purchases),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cerrar exportadores OTLP")
	}

	log.Info().Msg("aplicación detenida")
}
