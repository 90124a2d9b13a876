package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCOP_SinDecimales(t *testing.T) {
	out := FormatCOP(decimal.RequireFromString("1250000.40"))

	assert.True(t, strings.HasPrefix(out, "$ "), out)
	assert.NotContains(t, out, ",40")
	assert.Contains(t, out, "250")
}

func TestFormatCOP_Negativo(t *testing.T) {
	out := FormatCOP(decimal.NewFromInt(-300))

	assert.True(t, strings.HasPrefix(out, "-$ "), out)
	assert.Contains(t, out, "300")
}

func TestValidAmount(t *testing.T) {
	cases := map[string]bool{
		"0":       true,
		"45000":   true,
		"1.5":     true,
		"1.50":    true,
		"1.500":   true,
		"1.005":   false,
		"0.001":   false,
		"0.004":   false,
		"-1":      false,
		"-0.5":    false,
		"99.9999": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidAmount(decimal.RequireFromString(in)), in)
	}
}
