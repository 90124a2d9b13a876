package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gior-api/internal/domain/entity"
)

// SaleRepository persistencia de encabezados y líneas de venta.
type SaleRepository interface {
	CreateHeader(ctx context.Context, sale *entity.Sale) error
	CreateLine(ctx context.Context, line *entity.SaleLine) error
	// GetByID devuelve solo el encabezado; (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	ListLines(ctx context.Context, saleID int64) ([]entity.SaleLine, error)
	DeleteLines(ctx context.Context, saleID int64) error
	Delete(ctx context.Context, id int64) error
	ListLineViews(ctx context.Context) ([]*entity.SaleLineView, error)
	// Totals agrega ventas con fecha >= since (zero time = todas).
	Totals(ctx context.Context, since time.Time) (entity.SalesTotals, error)
}
