// Package pdf maqueta el reporte de catálogo en una página A4.
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Categoría | Precio | Stock | Valor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades en stock / Valor del inventario          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CatalogPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCatalogPDF(_ context.Context, report usecase.CatalogReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Lines) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New("Sin productos registrados", props.Text{
			Size: 8, Align: align.Center, Top: 2, Color: colorGray,
		}))))
	}
	m.AddRows(tableDetailRows(report.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))
	if report.Truncated {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Reporte truncado: se muestran %d productos y los totales solo los incluyen a ellos.", len(report.Lines)),
			props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray},
		))))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report usecase.CatalogReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(report.Title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

func tableDetailRows(lines []usecase.CatalogLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(l.ProductID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.CategoryName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(l.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+formatMoney(l.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(report usecase.CatalogReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades en stock:"),
			text.New("Valor del inventario:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			text.New(strconv.Itoa(report.TotalStock), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New("$"+formatMoney(report.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}

// formatMoney formatea con dos decimales, punto de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
