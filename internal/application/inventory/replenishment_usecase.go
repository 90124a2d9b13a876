package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición: productos en o bajo su punto
// de reorden con la cantidad sugerida para volver al stock ideal.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	lowStock    int
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, lowStock int) *ReplenishmentUseCase {
	if lowStock <= 0 {
		lowStock = entity.DefaultLowStockThreshold
	}
	return &ReplenishmentUseCase{productRepo: productRepo, lowStock: lowStock}
}

// GenerateReplenishmentList punto de reorden = stockMinimo o el umbral global;
// stock ideal = stockMaximo o 1.5 veces el punto de reorden.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.productRepo.ListInventory(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, it := range items {
		reorder := uc.lowStock
		if it.MinStock != nil {
			reorder = *it.MinStock
		}
		if it.Quantity > reorder {
			continue
		}
		ideal := (reorder*3 + 1) / 2
		if it.MaxStock != nil {
			ideal = *it.MaxStock
		}
		qty := ideal - it.Quantity
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			IDProducto:       it.ProductID,
			Codigo:           it.Code,
			Nombre:           it.Name,
			StockActual:      it.Quantity,
			PuntoReorden:     reorder,
			StockIdeal:       ideal,
			CantidadSugerida: qty,
			ValorEstimado:    it.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2),
		})
	}

	// Mayor déficit primero; desempate por código.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.PuntoReorden - a.StockActual
		defB := b.PuntoReorden - b.StockActual
		if defA != defB {
			return defA > defB
		}
		return a.Codigo < b.Codigo
	})

	// Prioridad 1 = más urgente
	for i := range suggestions {
		suggestions[i].Prioridad = i + 1
	}
	return suggestions, nil
}
