package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadRows_UTF8ConEncabezado(t *testing.T) {
	in := "codigo;nombre;tipo;talla;color;precio;cantidad\n" +
		"CAM-01;Camisa Oxford;Camisa;M;Azul;$ 45.000;12\n" +
		"PAN-02;Pantalón drill;Pantalón;32;Beige;89000;0\n"

	rows, err := readRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "CAM-01", rows[0].Code)
	assert.True(t, decimal.NewFromInt(45000).Equal(rows[0].Price))
	assert.Equal(t, 12, rows[0].Quantity)
	assert.Equal(t, "Pantalón drill", rows[1].Name)
	assert.Equal(t, 3, rows[1].Line)
}

func TestReadRows_Latin1(t *testing.T) {
	utf := "PAN-03;Pantalón;Pantalón;S;Negro;50000;2\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	rows, err := readRows(bytes.NewReader([]byte(latin)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pantalón", rows[0].Name)
}

func TestReadRows_Errores(t *testing.T) {
	_, err := readRows(strings.NewReader("CAM-01;Camisa;Camisa;M;Azul;abc;1\n"))
	assert.ErrorContains(t, err, "línea 1")

	_, err = readRows(strings.NewReader("CAM-01;Camisa;Camisa;M;Azul;1000;-3\n"))
	assert.ErrorContains(t, err, "cantidad inválida")

	_, err = readRows(strings.NewReader("CAM-01;Camisa\n"))
	assert.ErrorContains(t, err, "7 columnas")
}

func TestParsePrice_FormatoColombiano(t *testing.T) {
	p, err := parsePrice("$ 1.250.000,50")
	require.NoError(t, err)
	assert.Equal(t, "1250000.5", p.String())
}
