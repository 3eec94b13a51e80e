// Package pdf genera el comprobante de venta en PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Orden + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + método de pago + estado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-retail-api/internal/application/order"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
)

// Ensure ReceiptGenerator implements order.ReceiptGenerator.
var _ order.ReceiptGenerator = (*ReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera comprobantes de venta con Maroto v2.
type ReceiptGenerator struct {
	storeName string
}

// NewReceiptGenerator construye el generador con el nombre de la tienda.
func NewReceiptGenerator(storeName string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName}
}

// Receipt genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) Receipt(o *entity.Order, lines []order.ReceiptLine, customerName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(o, customerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range lines {
		m.AddRows(itemRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq), número de orden y fecha (der).
func (g *ReceiptGenerator) headerRow(o *entity.Order) core.Row {
	fecha := o.CreatedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.ID, props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente, método de pago y estado de la orden.
func customerRow(o *entity.Order, customerName string) core.Row {
	return row.New(10).Add(
		col.New(5).Add(
			text.New("Cliente: "+customerName, props.Text{Size: 9, Top: 1}),
		),
		col.New(4).Add(
			text.New("Pago: "+o.PaymentMethod, props.Text{Size: 9, Top: 1}),
		),
		col.New(3).Add(
			text.New("Estado: "+o.Status, props.Text{Size: 9, Top: 1, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("P. Unit", propsRight(header))),
		col.New(3).Add(text.New("Subtotal", propsRight(header))),
	)
}

func itemRow(l order.ReceiptLine) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), cell)),
		col.New(5).Add(text.New(l.Description, cell)),
		col.New(2).Add(text.New(l.UnitPrice.StringFixed(2), propsRight(cell))),
		col.New(3).Add(text.New(l.Extension().StringFixed(2), propsRight(cell))),
	)
}

func totalRow(o *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(o.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
