package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptGenerator
	storeName    string
}

// NewReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptGenerator,
	storeName string,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
		storeName:    storeName,
	}
}

// DownloadReceipt devuelve el PDF y el nombre de archivo sugerido.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, saleID int64) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar venta ───────────────────────────────────────────────────────
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", domain.StorageFailure(fmt.Errorf("comprobante: obtener venta: %w", err))
	}
	if sale == nil {
		return nil, "", domain.NewEntityError(domain.ErrSaleNotFound, saleID)
	}
	lines, err := uc.saleRepo.ListLines(ctx, saleID)
	if err != nil {
		return nil, "", domain.StorageFailure(fmt.Errorf("comprobante: obtener líneas: %w", err))
	}

	// ── 2. Cliente (opcional: mostrador) ──────────────────────────────────────
	customerName := "Cliente de mostrador"
	if sale.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(ctx, *sale.CustomerID)
		if err != nil {
			return nil, "", domain.StorageFailure(fmt.Errorf("comprobante: obtener cliente: %w", err))
		}
		if customer != nil {
			customerName = customer.FullName()
		}
	}

	// ── 3. Líneas con datos del producto ──────────────────────────────────────
	data := ReceiptData{
		StoreName:    uc.storeName,
		SaleID:       sale.ID,
		Date:         sale.CreatedAt,
		SellerName:   sale.SellerName,
		CustomerName: customerName,
		CustomerID:   sale.CustomerID,
		Total:        sale.Total,
	}
	for _, l := range lines {
		product, err := uc.productRepo.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, "", domain.StorageFailure(fmt.Errorf("comprobante: obtener producto: %w", err))
		}
		code, name := "", fmt.Sprintf("Producto %d", l.ProductID)
		if product != nil {
			code, name = product.Code, product.Name
		}
		data.Lines = append(data.Lines, ReceiptLine{
			Code:      code,
			Name:      name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}

	// ── 4. Renderizar ─────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.Generate(data)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta-%d.pdf", sale.ID), nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
