// Package pdf implementa el reporte de reseñas de un local en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del local + ID  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de reseñas / calificación promedio          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Pedido | Calif. | Cocinero | Despachador | Repartidor│
//	│         + comentario por fila cuando existe                  │
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
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/chinawok-ops/internal/application/reviews"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reviews.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reviews.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReviewReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReviewReport(
	_ context.Context,
	local *entity.Local,
	list []*entity.Review,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de reseñas", true).
		WithAuthor(local.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(local))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(list))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableReviewRows(list) {
		m.AddRows(r)
	}
	if len(list) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Este local aún no tiene reseñas registradas.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del local + ID (izq) y fecha de generación (der).
func headerRow(local *entity.Local) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(local.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Local: "+local.LocalID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE RESEÑAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: total de reseñas y promedio de calificación.
func summaryRow(list []*entity.Review) core.Row {
	total := len(list)
	avg := "—"
	if total > 0 {
		sum := decimal.Zero
		for _, r := range list {
			sum = sum.Add(r.Calificacion)
		}
		avg = sum.Div(decimal.NewFromInt(int64(total))).StringFixed(2)
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de reseñas: %d   |   Calificación promedio: %s / 5", total, avg),
				props.Text{Size: 9, Top: 3, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de reseñas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Pedido", 3, align.Left),
		h("Calif.", 1, align.Center),
		h("Cocinero", 2, align.Center),
		h("Despachador", 2, align.Center),
		h("Repartidor", 2, align.Center),
		h("Fecha", 2, align.Right),
	)
}

// tableReviewRows: una fila por reseña, más una fila extra con el comentario
// cuando no está vacío.
func tableReviewRows(list []*entity.Review) []core.Row {
	result := make([]core.Row, 0, len(list))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	for _, r := range list {
		result = append(result, row.New(7).Add(
			cell(r.PedidoID, 3, align.Left),
			cell(r.Calificacion.StringFixed(1), 1, align.Center),
			cell(r.CocineroDNI, 2, align.Center),
			cell(r.DespachadorDNI, 2, align.Center),
			cell(r.RepartidorDNI, 2, align.Center),
			cell(r.CreatedAt.Format("02/01/2006"), 2, align.Right),
		))
		if r.Resena != "" {
			result = append(result, row.New(5).Add(col.New(12).Add(
				text.New("“"+r.Resena+"”", props.Text{
					Size: 7.5, Color: colorGray, Top: 0.5, Left: 3,
				}),
			)))
		}
	}
	return result
}
