// Package pdf implementa la ficha imprimible del panel 360 del cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del cliente  │  Grado RFM + CLV + Segmento  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTACTO: Email / Tel / Última compra                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUGERENCIAS: Título | Descripción | Acción                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTOS: Producto | Cant | Próx. servicio | Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de evaluación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/cliente360-api/internal/application/dto"
	"github.com/jhoicas/cliente360-api/internal/application/panel"
)

var _ panel.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa panel.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RenderPanel genera el PDF de la vista 360 y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderPanel(_ context.Context, p *dto.PanelDTO) ([]byte, error) {
	fullName := strings.TrimSpace(p.Customer.FirstName + " " + p.Customer.LastName)
	if fullName == "" {
		fullName = "Cliente"
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha Cliente 360", true).
		WithAuthor(fullName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p, fullName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contactRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("ACCIONES SUGERIDAS"))
	for _, r := range suggestionRows(p.Suggestions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("PRODUCTOS EN PODER DEL CLIENTE"))
	m.AddRows(holdingsHeaderRow())
	for _, r := range holdingRows(p.Holdings) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del cliente (izq) y puntuaciones derivadas (der).
func headerRow(p *dto.PanelDTO, fullName string) core.Row {
	grade := p.Score.RFMGrade
	if p.Score.RFMDefaulted {
		grade += " (estimado)"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(fullName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Segmento: "+tierLabel(p.Score.Tier), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA CLIENTE 360", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("RFM: "+grade, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("CLV: $"+formatMoney(p.Score.CLV.StringFixed(0)), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// contactRow: datos de contacto y última compra.
func contactRow(p *dto.PanelDTO) core.Row {
	lastPurchase := "sin compras registradas"
	if p.Customer.LastPurchaseAt != nil {
		lastPurchase = p.Customer.LastPurchaseAt.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CONTACTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Última compra: %s",
				nonEmpty(p.Customer.Email, "—"),
				nonEmpty(p.Customer.Phone, "—"),
				lastPurchase,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
	)
}

// suggestionRows: una fila por sugerencia, en orden de evaluación.
func suggestionRows(suggestions []dto.SuggestionDTO) []core.Row {
	result := make([]core.Row, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, row.New(10).Add(
			col.New(3).Add(text.New(s.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(6).Add(text.New(s.Description, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
			col.New(3).Add(text.New(s.ActionLabel, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// holdingsHeaderRow: cabecera de la tabla de productos.
func holdingsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Próx. servicio", 3, align.Center),
		h("Estado", 3, align.Right),
	)
}

// holdingRows: una fila por producto con su estado de ciclo de vida.
func holdingRows(holdings []dto.HoldingViewDTO) []core.Row {
	result := make([]core.Row, 0, len(holdings))
	for _, h := range holdings {
		nextService := "—"
		if h.NextServiceAt != nil {
			nextService = h.NextServiceAt.Format("02/01/2006")
		}
		statusColor := colorGray
		if h.Severity == "critical" {
			statusColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(h.ProductName, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", h.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(3).Add(text.New(nextService, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(3).Add(text.New(statusLabel(h.Status), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: statusColor,
			})),
		))
	}
	return result
}

// footerRow: fecha de evaluación del panel.
func footerRow(p *dto.PanelDTO) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			"Evaluado el "+p.EvaluatedAt.Format("02/01/2006 15:04")+" — las puntuaciones se recalculan en cada consulta.",
			props.Text{Size: 7, Align: align.Center, Top: 2, Color: colorGray},
		)),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func tierLabel(tier string) string {
	switch tier {
	case "active":
		return "Activo"
	case "at_risk":
		return "En riesgo"
	case "churn":
		return "Perdido"
	}
	return tier
}

func statusLabel(status string) string {
	switch status {
	case "overdue":
		return "Servicio vencido"
	case "due_soon":
		return "Servicio próximo"
	case "warning":
		return "Atención"
	case "healthy":
		return "Al día"
	}
	return "Sin programar"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
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
