package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// manualKinds tipos permitidos en movimientos manuales. REVERSAL_ENTRY solo lo genera la anulación de ventas.
var manualKinds = map[entity.MovementKind]bool{
	entity.MovementEntry:      true,
	entity.MovementExit:       true,
	entity.MovementAdjustment: true,
}

// RegisterMovement registra un movimiento manual (entrada, salida o ajuste positivo)
// en su propia transacción. Una corrección a la baja se registra como EXIT sin referencia.
func (uc *UseCase) RegisterMovement(ctx context.Context, actor entity.Actor, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	kind := entity.MovementKind(strings.ToUpper(strings.TrimSpace(in.Tipo)))
	if !manualKinds[kind] || in.IDProducto <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var out dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		ledger := NewStockLedger(repos, actor.Username)
		mov, err := ledger.Apply(ctx, entity.Movement{
			ProductID: in.IDProducto,
			Kind:      kind,
			Quantity:  in.Cantidad,
			Reason:    strings.TrimSpace(in.Motivo),
		})
		if err != nil {
			return err
		}
		out = toMovementResponse(mov)
		return nil
	})
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return &out, nil
}
