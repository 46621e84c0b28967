// Package export renders documents the console downloads: service order PDFs
// and receivable spreadsheets.
package export

import (
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"
	"mecanica_gestao/internal/usecase/interfaces"

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
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ServiceOrderPDF lays out one OS per A4 page: header, customer, totals and
// the linked receivables.
type ServiceOrderPDF struct {
	shopName string
}

var _ interfaces.IServiceOrderPDFRenderer = (*ServiceOrderPDF)(nil)

func NewServiceOrderPDF(shopName string) *ServiceOrderPDF {
	return &ServiceOrderPDF{shopName: shopName}
}

func (g *ServiceOrderPDF) Render(o entities.ServiceOrder, c entities.Customer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Ordem de Serviço #%d", o.Number), true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(c))
	m.AddRows(summaryRow(o))
	if len(o.Receivables) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(receivableHeaderRow())
		m.AddRows(receivableRows(o.Receivables)...)
	}
	if o.Status == entities.ServiceOrderStatusCanceled && o.CancelReason != "" {
		m.AddRows(text.NewRow(10, "Motivo do cancelamento: "+o.CancelReason, props.Text{Size: 8, Top: 3, Color: colorGray}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate service order: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ServiceOrderPDF) headerRow(o entities.ServiceOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("ORDEM DE SERVIÇO #%d", o.Number), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Emitida em "+format.FormatDate(o.CreatedAt), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Status: "+string(o.Status), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func customerRow(c entities.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Documento: %s   |   Telefone: %s   |   E-mail: %s",
				orDash(c.Document), orDash(c.Phone), orDash(c.Email),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func summaryRow(o entities.ServiceOrder) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(text.New("Total: "+format.FormatCurrency(o.TotalAmount), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}

func receivableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 2}))
	}
	return row.New(8).Add(
		h("Descrição", 6, align.Left),
		h("Vencimento", 2, align.Center),
		h("Status", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

func receivableRows(list []entities.Receivable) []core.Row {
	rows := make([]core.Row, 0, len(list))
	for _, r := range list {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(orDash(r.Description), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(format.FormatDate(r.DueDate), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(string(r.Status), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(format.FormatCurrency(r.Amount), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
