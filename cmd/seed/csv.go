package main

import (
	"bytes"
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

// seedRow una línea del CSV. Product vacío: la línea solo declara la categoría.
type seedRow struct {
	Line        int
	Category    string
	Product     string
	Description string
	Price       decimal.Decimal
	Stock       int
}

var requiredColumns = []string{"category", "product", "price", "stock"}

// decodeInput devuelve un lector UTF-8. encoding: utf8, latin1 o auto (latin1 si los bytes no son UTF-8 válido).
func decodeInput(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "auto", "":
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
		if utf8.Valid(raw) {
			return bytes.NewReader(raw), nil
		}
		return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("encoding desconocido %q", encoding)
	}
}

// parseRows lee el CSV con cabecera. Columnas: category, product, price, stock y opcional description.
func parseRows(r io.Reader) ([]seedRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q", col)
		}
	}
	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []seedRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := seedRow{
			Line:        line,
			Category:    field(rec, "category"),
			Product:     field(rec, "product"),
			Description: field(rec, "description"),
		}
		if row.Category == "" {
			return nil, fmt.Errorf("línea %d: category vacía", line)
		}
		if row.Product != "" {
			if row.Price, err = decimal.NewFromString(field(rec, "price")); err != nil {
				return nil, fmt.Errorf("línea %d: price inválido: %w", line, err)
			}
			if s := field(rec, "stock"); s != "" {
				if row.Stock, err = strconv.Atoi(s); err != nil {
					return nil, fmt.Errorf("línea %d: stock inválido: %w", line, err)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
