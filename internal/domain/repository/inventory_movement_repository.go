package repository

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// MovementRepository libro de movimientos (solo inserción y lectura).
type MovementRepository interface {
	Create(ctx context.Context, mov *entity.Movement) error
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Movement, error)
	ListByReference(ctx context.Context, referenceID int64) ([]*entity.Movement, error)
	// SumSigned devuelve Σ entradas - Σ salidas del producto.
	SumSigned(ctx context.Context, productID int64) (int, error)
}
