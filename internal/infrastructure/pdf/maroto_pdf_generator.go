// Package pdf genera los reportes imprimibles del inventario con Maroto v2.
//
// Layout de la página (A4 horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de <tipo>                                   │
//	│  Rango de fechas / fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA (fondo del color de la pestaña)                    │
//	│  filas alternadas                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorTitle   = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorDivider = &props.Color{Red: 200, Green: 200, Blue: 200}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ inventory.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inventory.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateTable genera el PDF de una tabla y devuelve sus bytes. La grilla tiene una celda
// por columna de la tabla; las filas que no caben pasan a la página siguiente.
func (g *MarotoPDFGenerator) GenerateTable(doc inventory.TableDocument) ([]byte, error) {
	if len(doc.Header) == 0 {
		return nil, fmt.Errorf("pdf: tabla sin columnas")
	}
	grid := len(doc.Header)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(grid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc.Title, grid))
	for _, l := range doc.Lines {
		m.AddRows(subtitleRow(l, grid))
	}
	m.AddRows(line.NewRow(4, props.Line{Color: colorDivider, Thickness: 0.3}))

	m.AddRows(headerRow(doc.Header, doc.HeaderColor))
	for i, r := range doc.Rows {
		m.AddRows(bodyRow(r, grid, i%2 == 1))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, grid int) core.Row {
	return row.New(12).Add(
		col.New(grid).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorTitle, Top: 2,
		})),
	)
}

func subtitleRow(s string, grid int) core.Row {
	return row.New(6).Add(
		col.New(grid).Add(text.New(s, props.Text{Size: 9, Color: colorGray, Top: 1})),
	)
}

// headerRow: cabecera con fondo del color de la pestaña y texto blanco.
func headerRow(header []string, c inventory.RGB) core.Row {
	cols := make([]core.Col, 0, len(header))
	for _, h := range header {
		cols = append(cols, col.New(1).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{
		BackgroundColor: &props.Color{Red: c.R, Green: c.G, Blue: c.B},
	})
}

func bodyRow(cells []string, grid int, striped bool) core.Row {
	cols := make([]core.Col, 0, grid)
	for i := 0; i < grid; i++ {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		cols = append(cols, col.New(1).Add(text.New(v, props.Text{
			Size: 8, Align: align.Center, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	r := row.New(7).Add(cols...)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}
