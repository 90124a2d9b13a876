package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// productRow fila del CSV de inventario.
type productRow struct {
	Line     int
	Code     string
	Name     string
	Type     string
	Size     string
	Color    string
	Price    decimal.Decimal
	Quantity int
}

// readRows lee el CSV. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
// La primera fila se omite cuando es encabezado.
func readRows(r io.Reader) ([]productRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var src io.Reader = strings.NewReader(string(raw))
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []productRow
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "codigo") {
			continue
		}
		if len(rec) < 7 {
			return nil, fmt.Errorf("línea %d: se esperaban 7 columnas, hay %d", line, len(rec))
		}
		price, err := parsePrice(rec[5])
		if err != nil {
			return nil, fmt.Errorf("línea %d: precio %q: %w", line, rec[5], err)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(rec[6]))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("línea %d: cantidad inválida %q", line, rec[6])
		}
		rows = append(rows, productRow{
			Line:     line,
			Code:     strings.TrimSpace(rec[0]),
			Name:     strings.TrimSpace(rec[1]),
			Type:     strings.TrimSpace(rec[2]),
			Size:     strings.TrimSpace(rec[3]),
			Color:    strings.TrimSpace(rec[4]),
			Price:    price,
			Quantity: qty,
		})
	}
	return rows, nil
}

// parsePrice acepta "$ 45.000", "45000" y "45000,50" (coma decimal, punto de miles).
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
