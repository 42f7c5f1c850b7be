// Package pdf genera el resumen imprimible de la bandeja de captura.
//
// Layout de la página A4 (horizontal):
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación   │  Centro / Almacén       │
//	│  ────────────────────────────────────────────────────────────────  │
//	│  TOTALES: Movimientos / Listos / Con error / Cantidad / Valor     │
//	│  ────────────────────────────────────────────────────────────────  │
//	│  TABLA: Clase | Grupo | Fecha | Material | Origen | Destino |     │
//	│         Cantidad | Valor | Estado                                 │
//	│  ────────────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de estado                                        │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorError   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSummaryReport genera el resumen de captura usando Maroto v2.
type MarotoSummaryReport struct {
	title string
}

// NewMarotoSummaryReport construye el generador; title se usa como encabezado.
func NewMarotoSummaryReport(title string) *MarotoSummaryReport {
	if title == "" {
		title = "Captura de movimientos de kardex"
	}
	return &MarotoSummaryReport{title: title}
}

// GenerateSummaryPDF genera el PDF de la bandeja y devuelve sus bytes.
func (g *MarotoSummaryReport) GenerateSummaryPDF(
	_ context.Context,
	state entity.ContextState,
	queue []*entity.Movement,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)
	sum := kardex.Summarize(queue)

	m.AddRows(headerRow(g.title, state, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(sum))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(queue)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sum))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha (izq) y contexto operativo (der).
func headerRow(title string, state entity.ContextState, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Centro: %s   |   Almacén: %s",
				nonEmpty(state.Centro, "—"), nonEmpty(state.Almacen, "—"),
			), props.Text{Size: 9, Align: align.Right, Top: 2}),
			text.New(fmt.Sprintf("Material: %s %s",
				nonEmpty(state.Material, "—"), state.MatDesc,
			), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

// totalsRow: contadores y totales de la bandeja.
func totalsRow(sum kardex.Summary) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		cell("Movimientos", strconv.Itoa(sum.Count)),
		cell("Listos", strconv.Itoa(sum.ReadyCount)),
		cell("Con error", strconv.Itoa(sum.ErrorsCount)),
		cell("Cantidad total", sum.TotalQty.StringFixed(3)),
		cell("Valor total", sum.TotalVal.StringFixed(2)),
		cell("Listo para enviar", siNo(sum.CanSubmit)),
	)
}

var tableCols = []struct {
	label string
	size  int
	align align.Type
}{
	{"Clase", 2, align.Left},
	{"Grupo", 1, align.Left},
	{"Fecha", 1, align.Center},
	{"Material", 1, align.Left},
	{"Origen", 1, align.Center},
	{"Destino", 1, align.Center},
	{"Cantidad", 2, align.Right},
	{"Valor", 2, align.Right},
	{"Estado", 1, align.Center},
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(tableCols))
	for _, c := range tableCols {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por movimiento, en el orden de la bandeja.
func tableDetailRows(queue []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(queue))
	for _, m := range queue {
		values := []string{
			classLabel(m),
			string(m.GrupoKardex),
			m.FechaConta,
			m.Material,
			location(m.Centro, m.Almacen),
			location(m.CentroDestino, m.AlmacenDestino),
			joinNonEmpty(m.Cantidad, m.UM),
			joinNonEmpty(m.Valor, m.Moneda),
			string(m.Status),
		}
		style := props.Text{Size: 7.5, Top: 1, Left: 1, Right: 1}
		if m.Status == entity.StatusError {
			style.Color = colorError
		}
		cols := make([]core.Col, 0, len(tableCols))
		for i, c := range tableCols {
			s := style
			s.Align = c.align
			cols = append(cols, col.New(c.size).Add(text.New(nonEmpty(values[i], "—"), s)))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// footerRow: leyenda según el estado de la bandeja.
func footerRow(sum kardex.Summary) core.Row {
	msg := "Todos los movimientos están listos para enviar."
	switch {
	case sum.Count == 0:
		msg = "La bandeja está vacía."
	case !sum.CanSubmit:
		msg = fmt.Sprintf("Hay %d movimiento(s) con error. Corrígelos antes de enviar.", sum.ErrorsCount)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func classLabel(m *entity.Movement) string {
	if m.ClaseMov == 0 {
		return ""
	}
	if m.ClaseMovDesc == "" {
		return strconv.Itoa(m.ClaseMov)
	}
	return strconv.Itoa(m.ClaseMov) + " " + m.ClaseMovDesc
}

func location(centro, almacen string) string {
	if centro == "" && almacen == "" {
		return ""
	}
	return nonEmpty(centro, "?") + "/" + nonEmpty(almacen, "?")
}

func joinNonEmpty(value, unit string) string {
	if value == "" {
		return ""
	}
	if unit == "" {
		return value
	}
	return value + " " + unit
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
