package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/application/ports"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/pkg/money"
)

// UseCase catálogo de productos con su stock: alta, edición, baja, listado y kardex.
// Toda modificación de cantidades pasa por StockLedger dentro de una transacción.
type UseCase struct {
	txRunner     ports.TxRunner
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	movementRepo repository.MovementRepository
	catalogRepo  repository.CatalogRepository
	lowStock     int
	now          func() time.Time
}

// NewUseCase construye el caso de uso. lowStock es el umbral de stock bajo por defecto.
func NewUseCase(
	txRunner ports.TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
	catalogRepo repository.CatalogRepository,
	lowStock int,
) *UseCase {
	if lowStock <= 0 {
		lowStock = entity.DefaultLowStockThreshold
	}
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		catalogRepo:  catalogRepo,
		lowStock:     lowStock,
		now:          time.Now,
	}
}

// List devuelve el inventario con el estado de stock calculado en el servidor.
func (uc *UseCase) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.productRepo.ListInventory(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemResponse{
			ID:          it.ProductID,
			Codigo:      it.Code,
			Nombre:      it.Name,
			Talla:       it.Size,
			Color:       it.Color,
			Tipo:        it.ProductType,
			Cantidad:    it.Quantity,
			Precio:      it.Price,
			StockMinimo: it.MinStock,
			StockMaximo: it.MaxStock,
			Estado:      entity.StockStatus(it.Quantity, it.MinStock, uc.lowStock),
		})
	}
	return out, nil
}

// Summary totales del inventario: productos, unidades, agotados, stock bajo y valor.
func (uc *UseCase) Summary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	items, err := uc.productRepo.ListInventory(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := &dto.InventorySummaryResponse{ValorInventario: decimal.Zero}
	for _, it := range items {
		out.TotalProductos++
		out.TotalUnidades += it.Quantity
		switch entity.StockStatus(it.Quantity, it.MinStock, uc.lowStock) {
		case entity.StockStatusOut:
			out.Agotados++
		case entity.StockStatusLow:
			out.StockBajo++
		}
		out.ValorInventario = out.ValorInventario.Add(it.Value())
	}
	out.ValorInventario = out.ValorInventario.Round(2)
	out.ValorInventarioFormateado = money.FormatCOP(out.ValorInventario)
	return out, nil
}

// CreateProduct crea el producto y su fila de stock. Si Cantidad > 0, la carga inicial
// queda registrada como ENTRY en el libro.
func (uc *UseCase) CreateProduct(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (int64, error) {
	code := strings.TrimSpace(in.Codigo)
	name := strings.TrimSpace(in.Nombre)
	if code == "" || name == "" || !money.ValidAmount(in.Precio) || in.Cantidad < 0 {
		return 0, domain.ErrInvalidInput
	}
	if err := validateThresholds(in.StockMinimo, in.StockMaximo); err != nil {
		return 0, err
	}
	if err := uc.checkCatalogRefs(ctx, in.IDTipo, in.IDTalla); err != nil {
		return 0, err
	}

	var productID int64
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		existing, err := repos.Products.GetByCode(ctx, code)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if existing != nil {
			return domain.ErrDuplicate
		}

		now := uc.now()
		product := &entity.Product{
			Code:          code,
			Name:          name,
			ProductTypeID: in.IDTipo,
			SizeID:        in.IDTalla,
			Color:         strings.TrimSpace(in.Color),
			Price:         in.Precio,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repos.Products.Create(ctx, product); err != nil {
			return domain.StorageFailure(err)
		}
		stock := &entity.Stock{
			ProductID: product.ID,
			Quantity:  0,
			MinStock:  in.StockMinimo,
			MaxStock:  in.StockMaximo,
			UpdatedAt: now,
		}
		if err := repos.Stock.Create(ctx, stock); err != nil {
			return domain.StorageFailure(err)
		}
		if in.Cantidad > 0 {
			ledger := NewStockLedger(repos, actor.Username)
			if _, err := ledger.Apply(ctx, entity.Movement{
				ProductID: product.ID,
				Kind:      entity.MovementEntry,
				Quantity:  in.Cantidad,
				Reason:    "Inventario inicial",
			}); err != nil {
				return err
			}
		}
		productID = product.ID
		return nil
	})
	if err != nil {
		return 0, domain.StorageFailure(err)
	}
	return productID, nil
}

// UpdateProduct edita nombre, tipo, talla, color, precio y umbrales. El código es inmutable
// y la cantidad solo cambia con movimientos.
func (uc *UseCase) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	if in.Precio != nil && !money.ValidAmount(*in.Precio) {
		return domain.ErrInvalidInput
	}
	if in.Nombre != nil && strings.TrimSpace(*in.Nombre) == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.checkCatalogRefs(ctx, in.IDTipo, in.IDTalla); err != nil {
		return err
	}

	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		product, err := repos.Products.GetByID(ctx, id)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if product == nil {
			return domain.NewEntityError(domain.ErrProductNotFound, id)
		}
		if in.Nombre != nil {
			product.Name = strings.TrimSpace(*in.Nombre)
		}
		if in.IDTipo != nil {
			product.ProductTypeID = in.IDTipo
		}
		if in.IDTalla != nil {
			product.SizeID = in.IDTalla
		}
		if in.Color != nil {
			product.Color = strings.TrimSpace(*in.Color)
		}
		if in.Precio != nil {
			product.Price = *in.Precio
		}
		product.UpdatedAt = uc.now()
		if err := repos.Products.Update(ctx, product); err != nil {
			return domain.StorageFailure(err)
		}

		if in.StockMinimo == nil && in.StockMaximo == nil {
			return nil
		}
		stock, err := repos.Stock.Get(ctx, id)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if stock == nil {
			return domain.NewEntityError(domain.ErrProductNotFound, id)
		}
		minStock, maxStock := stock.MinStock, stock.MaxStock
		if in.StockMinimo != nil {
			minStock = in.StockMinimo
		}
		if in.StockMaximo != nil {
			maxStock = in.StockMaximo
		}
		if err := validateThresholds(minStock, maxStock); err != nil {
			return err
		}
		return repos.Stock.UpdateThresholds(ctx, id, minStock, maxStock)
	})
	return domain.StorageFailure(err)
}

// DeleteProduct elimina un producto sin ventas, compras ni movimientos asociados.
func (uc *UseCase) DeleteProduct(ctx context.Context, id int64) error {
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		product, err := repos.Products.GetByID(ctx, id)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if product == nil {
			return domain.NewEntityError(domain.ErrProductNotFound, id)
		}
		referenced, err := repos.Products.IsReferenced(ctx, id)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if referenced {
			return domain.NewEntityError(domain.ErrProductInUse, id)
		}
		if err := repos.Stock.Delete(ctx, id); err != nil {
			return domain.StorageFailure(err)
		}
		return repos.Products.Delete(ctx, id)
	})
	return domain.StorageFailure(err)
}

// Kardex devuelve los movimientos del producto junto al stock actual y al saldo del libro.
func (uc *UseCase) Kardex(ctx context.Context, productID int64) (*dto.KardexResponse, error) {
	stock, err := uc.stockRepo.Get(ctx, productID)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if stock == nil {
		return nil, domain.NewEntityError(domain.ErrProductNotFound, productID)
	}
	movs, err := uc.movementRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	balance, err := uc.movementRepo.SumSigned(ctx, productID)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := &dto.KardexResponse{
		IDProducto:  productID,
		StockActual: stock.Quantity,
		SaldoLibro:  balance,
		Movimientos: make([]dto.MovementResponse, 0, len(movs)),
	}
	for _, m := range movs {
		out.Movimientos = append(out.Movimientos, toMovementResponse(m))
	}
	return out, nil
}

func (uc *UseCase) checkCatalogRefs(ctx context.Context, typeID, sizeID *int64) error {
	if typeID != nil {
		ok, err := uc.catalogRepo.ProductTypeExists(ctx, *typeID)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	if sizeID != nil {
		ok, err := uc.catalogRepo.SizeExists(ctx, *sizeID)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func validateThresholds(minStock, maxStock *int) error {
	if minStock != nil && *minStock < 0 {
		return domain.ErrInvalidInput
	}
	if maxStock != nil && *maxStock < 0 {
		return domain.ErrInvalidInput
	}
	if minStock != nil && maxStock != nil && *minStock > *maxStock {
		return domain.ErrInvalidInput
	}
	return nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		IDProducto:   m.ProductID,
		Tipo:         string(m.Kind),
		Cantidad:     m.Quantity,
		ReferenciaID: m.ReferenceID,
		Motivo:       m.Reason,
		Usuario:      m.CreatedBy,
		Fecha:        m.CreatedAt,
	}
}
