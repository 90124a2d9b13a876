package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/application/inventory"
	"github.com/jhoicas/gior-api/internal/application/ports"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/pkg/money"
)

// PurchaseUseCase registra compras a proveedores: encabezado, líneas y una ENTRY
// por línea que referencia la compra, todo en una transacción.
type PurchaseUseCase struct {
	txRunner     ports.TxRunner
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner ports.TxRunner, purchaseRepo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo}
}

// Create registra la compra y suma al stock cada línea.
func (uc *PurchaseUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.IDProveedor <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	lines := make([]entity.PurchaseLine, len(in.Items))
	total := decimal.Zero
	for i, it := range in.Items {
		if it.IDProducto <= 0 || it.Cantidad <= 0 || !money.ValidAmount(it.CostoUnitario) {
			return nil, domain.NewEntityError(domain.ErrInvalidLineItem, int64(i+1))
		}
		lines[i] = entity.PurchaseLine{ProductID: it.IDProducto, Quantity: it.Cantidad, UnitCost: it.CostoUnitario}
		total = total.Add(it.CostoUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}

	var out *dto.PurchaseResponse
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		ok, err := repos.Suppliers.Exists(ctx, in.IDProveedor)
		if err != nil {
			return domain.StorageFailure(err)
		}
		if !ok {
			return domain.NewEntityError(domain.ErrSupplierNotFound, in.IDProveedor)
		}

		purchase := &entity.Purchase{
			SupplierID: in.IDProveedor,
			Total:      total,
			CreatedBy:  actor.Username,
			CreatedAt:  time.Now(),
		}
		if err := repos.Purchases.CreateHeader(ctx, purchase); err != nil {
			return domain.StorageFailure(err)
		}

		ledger := inventory.NewStockLedger(repos, actor.Username)
		ref := purchase.ID
		for i := range lines {
			// La ENTRY va primero: un producto inexistente falla como ProductNotFound.
			if _, err := ledger.Apply(ctx, entity.Movement{
				ProductID:   lines[i].ProductID,
				Kind:        entity.MovementEntry,
				Quantity:    lines[i].Quantity,
				ReferenceID: &ref,
				Reason:      "Compra a proveedor",
			}); err != nil {
				return err
			}
			lines[i].PurchaseID = purchase.ID
			if err := repos.Purchases.CreateLine(ctx, &lines[i]); err != nil {
				return domain.StorageFailure(err)
			}
		}
		out = &dto.PurchaseResponse{
			ID:          purchase.ID,
			IDProveedor: purchase.SupplierID,
			Total:       purchase.Total,
			Usuario:     purchase.CreatedBy,
			Fecha:       purchase.CreatedAt,
			ItemsCount:  len(lines),
		}
		return nil
	})
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	return out, nil
}

// List lista compras (sin líneas).
func (uc *PurchaseUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.PurchaseResponse, error) {
	page.DefaultPage()
	list, err := uc.purchaseRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PurchaseResponse{
			ID:          p.ID,
			IDProveedor: p.SupplierID,
			Total:       p.Total,
			Usuario:     p.CreatedBy,
			Fecha:       p.CreatedAt,
		})
	}
	return out, nil
}
