// seed carga productos con su stock inicial desde un CSV exportado de la hoja de inventario
// (separado por ';', codificación ISO-8859-1 como lo guarda Excel en español).
//
// Columnas: codigo;nombre;tipo;talla;color;precio;cantidad
//
// Uso: go run ./cmd/seed [ruta/inventario.csv]
// Por defecto busca inventario.csv en el directorio actual. Los códigos existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/application/usecase"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/infrastructure/store"
	"github.com/jhoicas/gior-api/pkg/config"
	"github.com/jhoicas/gior-api/pkg/logger"
)

func main() {
	csvPath := "inventario.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DB, true)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a base de datos")
	}
	defer db.Close()

	repos := db.Repos
	catalogs, err := newCatalogResolver(ctx, usecase.NewCatalogUseCase(repos.Catalog))
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogos")
	}
	inventoryUC := inventory.NewUseCase(db.Runner, repos.Products, repos.Stock, repos.Movements, repos.Catalog, cfg.Inventory.LowStockThreshold)
	actor := entity.Actor{Username: "seed", Role: entity.RoleAdmin}

	var created, skipped int
	for _, r := range rows {
		typeID, err := catalogs.productType(ctx, r.Type)
		if err != nil {
			log.Fatal().Err(err).Int("line", r.Line).Msg("tipo de producto")
		}
		sizeID, err := catalogs.size(ctx, r.Size)
		if err != nil {
			log.Fatal().Err(err).Int("line", r.Line).Msg("talla")
		}
		_, err = inventoryUC.CreateProduct(ctx, actor, dto.CreateProductRequest{
			Codigo:   r.Code,
			Nombre:   r.Name,
			IDTipo:   typeID,
			IDTalla:  sizeID,
			Color:    r.Color,
			Precio:   r.Price,
			Cantidad: r.Quantity,
		})
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
		case err != nil:
			log.Fatal().Err(err).Int("line", r.Line).Str("codigo", r.Code).Msg("crear producto")
		default:
			created++
		}
	}
	log.Info().Int("created", created).Int("skipped", skipped).Str("file", csvPath).Msg("carga de inventario terminada")
}

// catalogResolver traduce nombres de tipo y talla a IDs y crea los que falten.
type catalogResolver struct {
	uc    *usecase.CatalogUseCase
	types map[string]int64
	sizes map[string]int64
}

func newCatalogResolver(ctx context.Context, uc *usecase.CatalogUseCase) (*catalogResolver, error) {
	r := &catalogResolver{uc: uc, types: map[string]int64{}, sizes: map[string]int64{}}
	types, err := uc.ListProductTypes(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		r.types[strings.ToLower(t.Nombre)] = t.ID
	}
	sizes, err := uc.ListSizes(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range sizes {
		r.sizes[strings.ToUpper(s.Nombre)] = s.ID
	}
	return r, nil
}

func (r *catalogResolver) productType(ctx context.Context, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := r.types[strings.ToLower(name)]; ok {
		return &id, nil
	}
	pt, err := r.uc.CreateProductType(ctx, dto.CatalogItemRequest{Nombre: name})
	if err != nil {
		return nil, err
	}
	r.types[strings.ToLower(name)] = pt.ID
	return &pt.ID, nil
}

func (r *catalogResolver) size(ctx context.Context, name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	key := strings.ToUpper(name)
	if id, ok := r.sizes[key]; ok {
		return &id, nil
	}
	s, err := r.uc.CreateSize(ctx, dto.CatalogItemRequest{Nombre: name})
	if err != nil {
		return nil, err
	}
	r.sizes[key] = s.ID
	return &s.ID, nil
}
