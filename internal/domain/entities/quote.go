package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - There is no enforced state machine: any status may move to any other.
//   - "rascunho" is the status assigned on creation and duplication.
type QuoteStatus string

const (
	QuoteStatusRascunho  QuoteStatus = "rascunho"
	QuoteStatusEnviado   QuoteStatus = "enviado"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusRascunho, QuoteStatusEnviado, QuoteStatusAprovado, QuoteStatusRejeitado:
		return true
	}
	return false
}

// ClientSnapshot is the client data embedded into a quote at save time.
// Quotes never hold a live reference to the registry: deleting or editing a
// client does not touch quotes that already embedded it.
type ClientSnapshot struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}

// QuoteItem is one priced line. ServiceID is kept only as provenance; the
// name, unit and price are copies taken when the item was added.
type QuoteItem struct {
	ServiceID string  `json:"serviceId"`
	Nome      string  `json:"nome"`
	Unidade   string  `json:"unidade"`
	Preco     float64 `json:"preco"`
	Qtd       float64 `json:"qtd"`
}

// RevisionSnapshot captures the pricing-relevant fields of a quote
// immediately before an update is applied.
type RevisionSnapshot struct {
	Itens    []QuoteItem `json:"itens"`
	Subtotal float64     `json:"subtotal"`
	Total    float64     `json:"total"`
	Margem   float64     `json:"margem"`
	Desconto float64     `json:"desconto"`
	Status   QuoteStatus `json:"status"`
}

// QuoteRevision is one append-only history entry. History grows without
// bound; there is no retention policy.
type QuoteRevision struct {
	At   time.Time        `json:"at"`
	Prev RevisionSnapshot `json:"prev"`
}

// Quote is the central priced-proposal entity.
//
// Subtotal and Total are persisted snapshots of the last computation; the
// authoritative values are always recomputable from Itens/Margem/Desconto.
type Quote struct {
	ID        string          `json:"id"`
	Status    QuoteStatus     `json:"status"`
	Cliente   ClientSnapshot  `json:"cliente"`
	Itens     []QuoteItem     `json:"itens"`
	Margem    float64         `json:"margem"`
	Desconto  float64         `json:"desconto"`
	Subtotal  float64         `json:"subtotal"`
	Total     float64         `json:"total"`
	Obs       string          `json:"obs"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	History   []QuoteRevision `json:"history"`
}

// Totals is the result of the pricing computation shared by previews,
// persistence and every export channel.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	MargemValor   float64 `json:"margemValor"`
	DescontoValor float64 `json:"descontoValor"`
	Total         float64 `json:"total"`
}

// ComputeTotals applies the pricing rules:
//
//	subtotal = Σ preco*qtd
//	total    = max(0, subtotal + subtotal*margem/100 - subtotal*desconto/100)
//
// The total is clamped at zero even when the discount exceeds 100%.
func ComputeTotals(itens []QuoteItem, margem, desconto float64) Totals {
	subtotal := 0.0
	for _, it := range itens {
		subtotal += it.Preco * it.Qtd
	}
	margemVal := subtotal * (margem / 100)
	descontoVal := subtotal * (desconto / 100)
	total := subtotal + margemVal - descontoVal
	if total < 0 {
		total = 0
	}
	return Totals{
		Subtotal:      subtotal,
		MargemValor:   margemVal,
		DescontoValor: descontoVal,
		Total:         total,
	}
}

// Totals recomputes the quote's figures from its current item state.
func (q Quote) Totals() Totals {
	return ComputeTotals(q.Itens, q.Margem, q.Desconto)
}

// Snapshot builds the revision entry for the quote's current state.
func (q Quote) Snapshot(at time.Time) QuoteRevision {
	return QuoteRevision{
		At: at,
		Prev: RevisionSnapshot{
			Itens:    CloneItems(q.Itens),
			Subtotal: q.Subtotal,
			Total:    q.Total,
			Margem:   q.Margem,
			Desconto: q.Desconto,
			Status:   q.Status,
		},
	}
}

// Clone deep-copies the quote, including items and history.
func (q Quote) Clone() Quote {
	out := q
	out.Itens = CloneItems(q.Itens)
	if q.History != nil {
		out.History = make([]QuoteRevision, len(q.History))
		for i, rev := range q.History {
			out.History[i] = rev
			out.History[i].Prev.Itens = CloneItems(rev.Prev.Itens)
		}
	}
	return out
}

func CloneItems(itens []QuoteItem) []QuoteItem {
	if itens == nil {
		return nil
	}
	out := make([]QuoteItem, len(itens))
	copy(out, itens)
	return out
}
