// Package money formatea montos en pesos colombianos.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var colombia = language.MustParse("es-CO")

// FormatCOP formatea un monto como moneda COP sin decimales, ej: "$ 1.250.000".
func FormatCOP(amount decimal.Decimal) string {
	p := message.NewPrinter(colombia)
	rounded := amount.Round(0).IntPart()
	if rounded < 0 {
		return p.Sprintf("-$ %v", number.Decimal(-rounded))
	}
	return p.Sprintf("$ %v", number.Decimal(rounded))
}

// ValidAmount indica si amount es un monto aceptable: no negativo y con a lo sumo
// dos decimales. Los ceros a la derecha no cuentan ("1.500" es válido).
func ValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.Equal(amount.Truncate(2))
}
