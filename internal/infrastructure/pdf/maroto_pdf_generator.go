// Package pdf implementa la representación impresa de una orden de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + RFC        │  ORDEN DE VENTA #ID + Fecha   │
//	│                              │  [insignia de pago]           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre comercial / Razón social / RFC              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant. | P. Unit. | Importe             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA / Total / Pagado / Saldo pendiente  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Axioma-api/internal/application/orders"
	"github.com/jhoicas/Axioma-api/internal/domain/entity"
	"github.com/jhoicas/Axioma-api/internal/domain/sales"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorGreen   = &props.Color{Red: 22, Green: 163, Blue: 74}
)

// badge colores de la insignia de estado de pago (fondo, texto).
type badge struct {
	label string
	bg    *props.Color
	fg    *props.Color
}

var paymentBadges = map[string]badge{
	entity.PaymentStatusPaid: {
		label: "PAGADO",
		bg:    &props.Color{Red: 220, Green: 252, Blue: 231},
		fg:    &props.Color{Red: 22, Green: 101, Blue: 52},
	},
	entity.PaymentStatusPartial: {
		label: "PARCIALMENTE PAGADO",
		bg:    &props.Color{Red: 254, Green: 249, Blue: 195},
		fg:    &props.Color{Red: 133, Green: 77, Blue: 14},
	},
	entity.PaymentStatusUnpaid: {
		label: "PENDIENTE DE PAGO",
		bg:    &props.Color{Red: 254, Green: 226, Blue: 226},
		fg:    &props.Color{Red: 153, Green: 27, Blue: 27},
	},
}

var printer = message.NewPrinter(language.MustParse("es-MX"))

// ── Generator ─────────────────────────────────────────────────────────────────

var _ orders.OrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa orders.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(_ context.Context, doc *orders.OrderDocument) ([]byte, error) {
	if doc == nil || doc.Order == nil {
		return nil, fmt.Errorf("pdf: documento vacío")
	}
	org := doc.Organization
	if org == nil {
		org = &entity.Organization{}
	}
	customer := doc.Entity
	if customer == nil {
		customer = &entity.BusinessEntity{CommercialName: doc.Order.EntityName}
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de venta "+sales.ShortID(doc.Order.ID), true).
		WithAuthor(org.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc.Order, org)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableItemRows(doc.Items)...)

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(totalsRows(doc.Totals, doc.Paid, doc.Balance)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: emisor (izq) y folio, fecha e insignia de pago (der).
func headerRows(order *entity.Order, org *entity.Organization) []core.Row {
	b, ok := paymentBadges[order.PaymentStatus]
	if !ok {
		b = paymentBadges[entity.PaymentStatusUnpaid]
	}

	emisor := []core.Component{
		text.New(nonEmpty(org.Name, "-"), props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	}
	top := 9.0
	for _, s := range []string{rfcLine(org.TaxID), org.Address, org.Phone} {
		if s == "" {
			continue
		}
		emisor = append(emisor, text.New(s, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}

	return []core.Row{
		row.New(24).Add(
			col.New(7).Add(emisor...),
			col.New(5).Add(
				text.New("ORDEN DE VENTA", props.Text{
					Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
				}),
				text.New("#"+sales.ShortID(order.ID), props.Text{
					Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
				}),
				text.New("Fecha: "+order.CreatedAt.Format("02/01/2006"), props.Text{
					Size: 8, Align: align.Right, Top: 15, Color: colorGray,
				}),
			),
		),
		row.New(7).Add(
			col.New(7),
			col.New(5).WithStyle(&props.Cell{BackgroundColor: b.bg}).Add(
				text.New(b.label, props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: b.fg, Top: 1.5,
				}),
			),
		),
	}
}

// customerRow: datos del cliente.
func customerRow(c *entity.BusinessEntity) core.Row {
	comps := []core.Component{
		text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(nonEmpty(c.CommercialName, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	}
	top := 12.0
	for _, s := range []string{c.LegalName, rfcLine(c.TaxID)} {
		if s == "" {
			continue
		}
		comps = append(comps, text.New(s, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}
	return row.New(top + 2).Add(col.New(12).Add(comps...))
}

// tableHeaderRow: cabecera de la tabla de partidas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("DESCRIPCIÓN", 6, align.Left),
		h("CANT.", 2, align.Center),
		h("P. UNIT.", 2, align.Right),
		h("IMPORTE", 2, align.Right),
	)
}

// tableItemRows: una fila por partida. Maroto pagina cuando no caben.
func tableItemRows(items []*entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(nonEmpty(it.ProductName, "-"), props.Text{
				Size: 8, Align: align.Left, Top: 1.5, Left: 1,
			})),
			col.New(2).Add(text.New(quantity(it.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1.5,
			})),
			col.New(2).Add(text.New(formatMXN(it.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 1.5, Right: 1,
			})),
			col.New(2).Add(text.New(formatMXN(it.Amount()), props.Text{
				Size: 8, Align: align.Right, Top: 1.5, Right: 1,
			})),
		))
	}
	return rows
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(t sales.Totals, paid, balance decimal.Decimal) []core.Row {
	totalLine := func(label, value string, bold bool, color *props.Color) core.Row {
		st := fontstyle.Normal
		if bold {
			st = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Style: st, Size: 9, Align: align.Right, Right: 1, Top: 1, Color: color,
			})),
		)
	}

	balanceColor := colorGreen
	if balance.GreaterThan(sales.PaidTolerance) {
		balanceColor = colorRed
	}
	taxLabel := fmt.Sprintf("IVA (%s%%):", sales.TaxRate.Shift(2).String())

	return []core.Row{
		totalLine("SUBTOTAL:", formatMXN(t.Subtotal), false, nil),
		totalLine(taxLabel, formatMXN(t.Tax), false, nil),
		totalLine("TOTAL:", formatMXN(t.Total), true, colorPrimary),
		totalLine("PAGADO:", formatMXN(paid), false, nil),
		totalLine("SALDO PENDIENTE:", formatMXN(balance), true, balanceColor),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func rfcLine(taxID string) string {
	if taxID == "" {
		return ""
	}
	return "RFC: " + taxID
}

// formatMXN formatea un importe en pesos mexicanos: 1234.5 -> "$1,234.50".
func formatMXN(d decimal.Decimal) string {
	scale, _ := currency.Standard.Rounding(currency.MXN)
	v := d.Round(int32(scale))
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	return sign + "$" + printer.Sprint(number.Decimal(v.InexactFloat64(), number.Scale(scale)))
}

// quantity muestra la cantidad sin ceros decimales sobrantes: "2", "1.5".
func quantity(q decimal.Decimal) string {
	return q.String()
}
