// Package pdf genera el comprobante de venta en PDF.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Tienda        │  N° Venta + Fecha   │
//	│  CLIENTE / VENDEDOR                          │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Producto | P.Unit |  │
//	│         Subtotal                             │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL                                       │
//	│  QR de la venta + leyenda                    │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gior-api/internal/application/sales"
	"github.com/jhoicas/gior-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(data sales.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(fmt.Sprintf("Comprobante de venta %d", data.SaleID), true).
		WithAuthor(nonEmpty(data.StoreName, "Tienda"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(data.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data sales.ReceiptData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.StoreName, "Tienda"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", data.SaleID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+data.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func partiesRow(data sales.ReceiptData) core.Row {
	return row.New(12).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(data.CustomerName, props.Text{Size: 9, Top: 5}),
		),
		col.New(5).Add(
			text.New("VENDEDOR", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(data.SellerName, "-"), props.Text{Size: 9, Align: align.Right, Top: 5}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Cant.", 1, align.Center),
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableLineRows(lines []sales.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.Code, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.Name, props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money.FormatCOP(l.UnitPrice), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money.FormatCOP(l.Subtotal), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(data sales.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(money.FormatCOP(data.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRow: QR con la referencia de la venta y leyenda.
func footerRow(data sales.ReceiptData) core.Row {
	ref := fmt.Sprintf("VENTA-%d|%s|%s", data.SaleID, data.Date.Format("20060102150405"), data.Total.StringFixed(2))
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Gracias por su compra.", props.Text{Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3}),
			text.New("Los cambios requieren presentar este comprobante.", props.Text{
				Size: 7, Top: 11, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
