package response

import (
	"time"

	"orcamentix/internal/domain/entities"
)

type QuoteClientResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}

type QuoteItemResponse struct {
	ServiceID string  `json:"serviceId"`
	Nome      string  `json:"nome"`
	Unidade   string  `json:"unidade"`
	Preco     float64 `json:"preco"`
	Qtd       float64 `json:"qtd"`
}

type RevisionSnapshotResponse struct {
	Itens    []QuoteItemResponse `json:"itens"`
	Subtotal float64             `json:"subtotal"`
	Total    float64             `json:"total"`
	Margem   float64             `json:"margem"`
	Desconto float64             `json:"desconto"`
	Status   string              `json:"status"`
}

type RevisionResponse struct {
	At   time.Time                `json:"at"`
	Prev RevisionSnapshotResponse `json:"prev"`
}

type QuoteResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	Cliente   QuoteClientResponse `json:"cliente"`
	Itens     []QuoteItemResponse `json:"itens"`
	Margem    float64             `json:"margem"`
	Desconto  float64             `json:"desconto"`
	Subtotal  float64             `json:"subtotal"`
	Total     float64             `json:"total"`
	Obs       string              `json:"obs"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	History   []RevisionResponse  `json:"history"`
}

func fromItems(items []entities.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, QuoteItemResponse{
			ServiceID: it.ServiceID,
			Nome:      it.Nome,
			Unidade:   it.Unidade,
			Preco:     it.Preco,
			Qtd:       it.Qtd,
		})
	}
	return out
}

func fromHistory(history []entities.QuoteRevision) []RevisionResponse {
	out := make([]RevisionResponse, 0, len(history))
	for _, rev := range history {
		out = append(out, RevisionResponse{
			At: rev.At,
			Prev: RevisionSnapshotResponse{
				Itens:    fromItems(rev.Prev.Itens),
				Subtotal: rev.Prev.Subtotal,
				Total:    rev.Prev.Total,
				Margem:   rev.Prev.Margem,
				Desconto: rev.Prev.Desconto,
				Status:   string(rev.Prev.Status),
			},
		})
	}
	return out
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		Status: string(q.Status),
		Cliente: QuoteClientResponse{
			ID:       q.Cliente.ID,
			Nome:     q.Cliente.Nome,
			Email:    q.Cliente.Email,
			Telefone: q.Cliente.Telefone,
			Empresa:  q.Cliente.Empresa,
		},
		Itens:     fromItems(q.Itens),
		Margem:    q.Margem,
		Desconto:  q.Desconto,
		Subtotal:  q.Subtotal,
		Total:     q.Total,
		Obs:       q.Obs,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		History:   fromHistory(q.History),
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// TotalsResponse is the preview result: every intermediate value the form
// displays alongside the final total.
type TotalsResponse struct {
	Subtotal      float64 `json:"subtotal"`
	MargemValor   float64 `json:"margemValor"`
	DescontoValor float64 `json:"descontoValor"`
	Total         float64 `json:"total"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:      t.Subtotal,
		MargemValor:   t.MargemValor,
		DescontoValor: t.DescontoValor,
		Total:         t.Total,
	}
}

type UnsavedResponse struct {
	Unsaved bool `json:"unsaved"`
}
