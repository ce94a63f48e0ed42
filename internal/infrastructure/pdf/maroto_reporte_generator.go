// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: REPORTE DE INVENTARIO │ Tipo + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Marca | Modelo | Material | Color | Talla |          │
//	│         Bodega | Tienda 1 | Tienda 2                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: pares en bodega / tienda 1 / tienda 2              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/domain/entity"
)

var _ bodega.ReporteGenerator = (*MarotoReporteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReporteGenerator implementa bodega.ReporteGenerator usando Maroto v2.
type MarotoReporteGenerator struct {
	// printer formatea cantidades con separador de miles en español.
	printer *message.Printer
}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator {
	return &MarotoReporteGenerator{printer: message.NewPrinter(language.Spanish)}
}

// GenerarReporte genera el PDF del inventario agrupado y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporte(
	_ context.Context,
	tipo string,
	grupos []entity.ZapatoGrupo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tipo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(grupos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(grupos))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y tipo + fecha de generación (der).
func headerRow(tipo string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Tipo: "+tipo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de existencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Marca", 2, align.Left),
		h("Modelo", 2, align.Left),
		h("Material", 2, align.Left),
		h("Color", 1, align.Left),
		h("Talla", 1, align.Center),
		h("Bodega", 1, align.Right),
		h("Tienda 1", 1, align.Right),
		h("Tienda 2", 2, align.Right),
	)
}

// tableRows: una fila por talla dentro de cada grupo. En la primera talla del
// grupo se imprimen los datos del modelo; en las siguientes quedan en blanco
// para que el reporte se lea agrupado.
func tableRows(grupos []entity.ZapatoGrupo) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}

	var result []core.Row
	for _, grupo := range grupos {
		for i, talla := range grupo.TallasDisponibles {
			marca, modelo, material, color := "", "", "", ""
			if i == 0 {
				marca, modelo, material, color = grupo.Marca, grupo.Modelo, grupo.Material, grupo.Color
			}
			result = append(result, row.New(6).Add(
				cell(marca, 2, align.Left),
				cell(modelo, 2, align.Left),
				cell(material, 2, align.Left),
				cell(color, 1, align.Left),
				cell(talla.Talla, 1, align.Center),
				cell(fmt.Sprintf("%d", talla.Bodega), 1, align.Right),
				cell(conteo(talla.Tienda1), 1, align.Right),
				cell(conteo(talla.Tienda2), 2, align.Right),
			))
		}
	}
	return result
}

// totalsRow: totales de pares por ubicación alineados a la derecha.
func (g *MarotoReporteGenerator) totalsRow(grupos []entity.ZapatoGrupo) core.Row {
	var bodega, tienda1, tienda2 int
	for _, grupo := range grupos {
		for _, talla := range grupo.TallasDisponibles {
			bodega += talla.Bodega
			if talla.Tienda1 != nil {
				tienda1 += *talla.Tienda1
			}
			if talla.Tienda2 != nil {
				tienda2 += *talla.Tienda2
			}
		}
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(n int) core.Component {
		return text.New(g.printer.Sprintf("%d", n), props.Text{
			Size: 9, Align: align.Right, Right: 1,
		})
	}

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Pares en bodega:"),
			label("Pares en tienda 1:"),
			label("Pares en tienda 2:"),
		),
		col.New(4).Add(
			value(bodega),
			value(tienda1),
			value(tienda2),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// conteo formatea una existencia de tienda; nil significa sin stock visible.
func conteo(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}
