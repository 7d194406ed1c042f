// Package pdf renders quote documents with maroto. Three templates share
// one body: the numeric content contract is identical across plans, only
// the header branding grows with the tier.
package pdf

import (
	"strconv"
	"time"

	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase/interfaces"
	"orcamentix/pkg"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Template default, blue-600.
var defaultBrandColor = props.Color{Red: 37, Green: 99, Blue: 235}

var grayColor = props.Color{Red: 100, Green: 100, Blue: 100}

type MarotoRenderer struct{}

var _ interfaces.IQuotePdfRenderer = (*MarotoRenderer)(nil)

func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{}
}

// RenderBasic is the free-tier template: fixed Orçamentix branding, no
// company identity.
func (r *MarotoRenderer) RenderBasic(doc interfaces.QuoteDocument) ([]byte, error) {
	m := newDocument()

	m.AddRow(12,
		text.NewCol(8, "ORÇAMENTIX", props.Text{
			Size: 18, Style: fontstyle.Bold, Color: &defaultBrandColor,
		}),
		text.NewCol(4, time.Now().Format("02/01/2006"), props.Text{
			Size: 9, Align: align.Right, Color: &grayColor,
		}),
	)
	m.AddRow(6, text.NewCol(12, "www.orcamentix.com.br", props.Text{
		Size: 9, Color: &grayColor,
	}))

	addQuoteBody(m, doc, defaultBrandColor)
	addFooter(m, "Gerado com Orçamentix — www.orcamentix.com.br")

	return generate(m)
}

// RenderPlus adds the company identity to the header.
func (r *MarotoRenderer) RenderPlus(doc interfaces.QuoteDocument, company entities.Company) ([]byte, error) {
	m := newDocument()
	brand := brandColor(company)

	m.AddRow(12,
		text.NewCol(8, company.Nome, props.Text{
			Size: 16, Style: fontstyle.Bold, Color: &brand,
		}),
		text.NewCol(4, time.Now().Format("02/01/2006"), props.Text{
			Size: 9, Align: align.Right, Color: &grayColor,
		}),
	)
	addCompanyContact(m, company)

	addQuoteBody(m, doc, brand)
	addFooter(m, "Gerado com Orçamentix")

	return generate(m)
}

// RenderPremium carries the full branding block: tagline, contact lines and
// the company's own color, with no Orçamentix footer.
func (r *MarotoRenderer) RenderPremium(doc interfaces.QuoteDocument, company entities.Company) ([]byte, error) {
	m := newDocument()
	brand := brandColor(company)

	m.AddRow(12,
		text.NewCol(8, company.Nome, props.Text{
			Size: 18, Style: fontstyle.Bold, Color: &brand,
		}),
		text.NewCol(4, time.Now().Format("02/01/2006"), props.Text{
			Size: 9, Align: align.Right, Color: &grayColor,
		}),
	)
	if company.Tagline != "" {
		m.AddRow(6, text.NewCol(12, company.Tagline, props.Text{
			Size: 10, Style: fontstyle.Italic, Color: &grayColor,
		}))
	}
	addCompanyContact(m, company)

	addQuoteBody(m, doc, brand)

	return generate(m)
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	document, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return document.GetBytes(), nil
}

func brandColor(company entities.Company) props.Color {
	if len(company.BrandColor) == 3 {
		return props.Color{
			Red:   company.BrandColor[0],
			Green: company.BrandColor[1],
			Blue:  company.BrandColor[2],
		}
	}
	return defaultBrandColor
}

func addCompanyContact(m core.Maroto, company entities.Company) {
	contact := company.Telefone
	if company.Email != "" {
		if contact != "" {
			contact += "  •  "
		}
		contact += company.Email
	}
	if contact != "" {
		m.AddRow(5, text.NewCol(12, contact, props.Text{Size: 9, Color: &grayColor}))
	}
	if company.CNPJ != "" {
		m.AddRow(5, text.NewCol(12, "CNPJ: "+company.CNPJ, props.Text{Size: 9, Color: &grayColor}))
	}
}

// addQuoteBody renders the content every template must carry: client block,
// itemized table, totals (2-decimal BRL) and observations.
func addQuoteBody(m core.Maroto, doc interfaces.QuoteDocument, brand props.Color) {
	q := doc.Quote
	totals := doc.Totals

	m.AddRow(12, text.NewCol(12, "ORÇAMENTO", props.Text{
		Top: 4, Size: 16, Style: fontstyle.Bold, Color: &brand,
	}))
	quoteDate := q.CreatedAt
	if quoteDate.IsZero() {
		quoteDate = time.Now()
	}
	m.AddRow(5, text.NewCol(12, "Data: "+quoteDate.Format("02/01/2006"), props.Text{
		Size: 9, Color: &grayColor,
	}))

	clientLine := q.Cliente.Nome
	if q.Cliente.Empresa != "" {
		clientLine += " (" + q.Cliente.Empresa + ")"
	}
	m.AddRow(8, text.NewCol(12, "Cliente: "+clientLine, props.Text{Top: 2, Size: 11, Style: fontstyle.Bold}))
	if q.Cliente.Email != "" || q.Cliente.Telefone != "" {
		m.AddRow(5, text.NewCol(12, joinNonEmpty(q.Cliente.Email, q.Cliente.Telefone), props.Text{
			Size: 9, Color: &grayColor,
		}))
	}

	m.AddRows(line.NewRow(4))

	m.AddRow(7,
		text.NewCol(5, "Item", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, "Qtd", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Unitário", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, "Subtotal", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, it := range q.Itens {
		m.AddRow(6,
			text.NewCol(5, it.Nome, props.Text{Size: 9}),
			text.NewCol(2, formatQty(it.Qtd)+" "+it.Unidade, props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, pkg.FormatBRL(it.Preco), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, pkg.FormatBRL(it.Preco*it.Qtd), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRows(line.NewRow(4))

	m.AddRow(6, totalsRow("Subtotal", pkg.FormatBRL(totals.Subtotal), false)...)
	if q.Margem != 0 {
		m.AddRow(6, totalsRow("Margem ("+formatQty(q.Margem)+"%)", "+"+pkg.FormatBRL(totals.MargemValor), false)...)
	}
	if q.Desconto != 0 {
		m.AddRow(6, totalsRow("Desconto ("+formatQty(q.Desconto)+"%)", "-"+pkg.FormatBRL(totals.DescontoValor), false)...)
	}
	m.AddRow(8, totalsRow("TOTAL", pkg.FormatBRL(totals.Total), true)...)

	if q.Obs != "" {
		m.AddRow(8, text.NewCol(12, "Observações", props.Text{Top: 3, Size: 10, Style: fontstyle.Bold}))
		m.AddRow(10, text.NewCol(12, q.Obs, props.Text{Size: 9}))
	}
}

func totalsRow(label, value string, bold bool) []core.Col {
	style := fontstyle.Normal
	size := 10.0
	if bold {
		style = fontstyle.Bold
		size = 12
	}
	return []core.Col{
		col.New(7),
		text.NewCol(2, label, props.Text{Size: size, Style: style}),
		text.NewCol(3, value, props.Text{Size: size, Style: style, Align: align.Right}),
	}
}

func addFooter(m core.Maroto, note string) {
	m.AddRow(10, text.NewCol(12, note, props.Text{
		Top: 6, Size: 8, Align: align.Center, Color: &grayColor,
	}))
}

func joinNonEmpty(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + "  •  " + b
	case a != "":
		return a
	default:
		return b
	}
}

// formatQty prints quantities and percents bare, without trailing zeros.
func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
