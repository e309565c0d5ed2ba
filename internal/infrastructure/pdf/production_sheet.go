// Package pdf genera la hoja de producción de un lote interno.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ingrediente producido  │  N° Lote + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Cantidad producida / Responsable / Notas           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ingrediente | Cantidad | Unidad | Costo U. | Subtotal│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Costo del lote / Costo por unidad                  │
//	│  FOOTER: QR con el N° de lote para etiquetar el envase       │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
)

var _ kitchen.ProductionSheetGenerator = (*MarotoSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSheetGenerator implementa kitchen.ProductionSheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct {
	restaurantName string
}

// NewMarotoSheetGenerator construye el generador. restaurantName va en el encabezado.
func NewMarotoSheetGenerator(restaurantName string) *MarotoSheetGenerator {
	return &MarotoSheetGenerator{restaurantName: restaurantName}
}

// ProductionSheet genera el PDF del lote y devuelve sus bytes.
func (g *MarotoSheetGenerator) ProductionSheet(batch *entity.ProductionBatch) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de producción "+batch.CompoundName, true).
		WithAuthor(g.restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(batch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(batch))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(batch.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(batch))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(batch))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de producción: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoSheetGenerator) headerRow(batch *entity.ProductionBatch) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(batch.CompoundName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(g.restaurantName, "Cocina"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HOJA DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Lote "+shortID(batch.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+batch.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func summaryRow(batch *entity.ProductionBatch) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cantidad producida: %s %s", batch.Quantity.String(), batch.Unit), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
			text.New(fmt.Sprintf("Responsable: %s   |   Notas: %s",
				nonEmpty(batch.CreatedBy, "—"),
				nonEmpty(batch.Notes, "—"),
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ingrediente", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Unidad", 1, align.Center),
		h("Costo unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableLineRows(lines []entity.ProductionBatchLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Quantity.StringFixed(3), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(string(l.Unit), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatCost(l.UnitCost, 4), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(formatCost(recipe.MulCost(l.UnitCost, l.Quantity), 2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(batch *entity.ProductionBatch) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	perUnit := recipe.Unknown
	if batch.Quantity.IsPositive() {
		perUnit = recipe.DivCost(batch.BatchCost, batch.Quantity)
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("Costo del lote:"),
			text.New("Costo por "+string(batch.Unit)+":", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			value(formatCost(batch.BatchCost, 2)),
			text.New(formatCost(perUnit, 4), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 6}),
		),
	)
}

func footerRow(batch *entity.ProductionBatch) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(batch.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Etiquete el envase con este código para trazar el lote.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(batch.ID, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatCost "$1.234,50"; "sin costo" si es desconocido.
func formatCost(c decimal.NullDecimal, places int32) string {
	if !c.Valid {
		return "sin costo"
	}
	fixed := c.Decimal.StringFixed(places)
	intPart, frac := fixed, ""
	for i := range fixed {
		if fixed[i] == '.' {
			intPart, frac = fixed[:i], fixed[i+1:]
			break
		}
	}
	neg := ""
	if len(intPart) > 0 && intPart[0] == '-' {
		neg, intPart = "-", intPart[1:]
	}
	out := neg + "$" + formatThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	return out
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
