package interfaces

import "orcamentix/internal/domain/entities"

// QuoteDocument is the computed shape every PDF template consumes: the quote
// plus totals freshly recomputed from its items. Templates differ only in
// visual richness, never in figures.
type QuoteDocument struct {
	Quote  entities.Quote
	Totals entities.Totals
}

// IQuotePdfRenderer renders a quote document into PDF bytes. One method per
// plan template; the export usecase owns the plan dispatch.
type IQuotePdfRenderer interface {
	RenderBasic(doc QuoteDocument) ([]byte, error)
	RenderPlus(doc QuoteDocument, company entities.Company) ([]byte, error)
	RenderPremium(doc QuoteDocument, company entities.Company) ([]byte, error)
}
