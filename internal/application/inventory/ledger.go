package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// StockLedger es la única vía para modificar stock.quantity: cada cambio actualiza la fila
// de stock y agrega un movimiento al libro. No abre transacciones propias; se construye
// con los repositorios de la transacción del llamador.
type StockLedger struct {
	stock     repository.StockRepository
	movements repository.MovementRepository
	createdBy string
	now       func() time.Time
}

// NewStockLedger construye el libro sobre los repos de la transacción en curso.
// createdBy queda registrado en cada movimiento.
func NewStockLedger(repos repository.Repos, createdBy string) *StockLedger {
	return &StockLedger{
		stock:     repos.Stock,
		movements: repos.Movements,
		createdBy: createdBy,
		now:       time.Now,
	}
}

// ApplyMovement aplica un movimiento de tipo kind por quantity unidades al producto.
// referenceID es la venta o compra que lo causa (nil para movimientos manuales).
func (l *StockLedger) ApplyMovement(
	ctx context.Context,
	productID int64,
	kind entity.MovementKind,
	quantity int,
	referenceID *int64,
) (*entity.Movement, error) {
	return l.Apply(ctx, entity.Movement{
		ProductID:   productID,
		Kind:        kind,
		Quantity:    quantity,
		ReferenceID: referenceID,
	})
}

// Apply igual que ApplyMovement pero acepta el movimiento completo (motivo incluido).
func (l *StockLedger) Apply(ctx context.Context, mov entity.Movement) (*entity.Movement, error) {
	if mov.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !mov.Kind.Valid() {
		return nil, domain.ErrInvalidInput
	}

	// Bloquea la fila de stock (SELECT FOR UPDATE) hasta el fin de la transacción
	stock, err := l.stock.GetForUpdate(ctx, mov.ProductID)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if stock == nil {
		return nil, domain.NewEntityError(domain.ErrProductNotFound, mov.ProductID)
	}

	newQty := stock.Quantity + mov.Signed()
	if newQty < 0 {
		return nil, domain.NewEntityError(domain.ErrInsufficientStock, mov.ProductID)
	}
	if err := l.stock.UpdateQuantity(ctx, mov.ProductID, newQty); err != nil {
		return nil, domain.StorageFailure(err)
	}

	mov.ID = uuid.New().String()
	mov.CreatedAt = l.now()
	if mov.CreatedBy == "" {
		mov.CreatedBy = l.createdBy
	}
	if err := l.movements.Create(ctx, &mov); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return &mov, nil
}

// CurrentStock devuelve la cantidad disponible del producto.
func (l *StockLedger) CurrentStock(ctx context.Context, productID int64) (int, error) {
	stock, err := l.stock.Get(ctx, productID)
	if err != nil {
		return 0, domain.StorageFailure(err)
	}
	if stock == nil {
		return 0, domain.NewEntityError(domain.ErrProductNotFound, productID)
	}
	return stock.Quantity, nil
}
