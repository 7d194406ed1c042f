package request

import (
	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase"
)

type QuoteClientRequest struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}

func (r QuoteClientRequest) toSnapshot() entities.ClientSnapshot {
	return entities.ClientSnapshot{
		ID:       r.ID,
		Nome:     r.Nome,
		Email:    r.Email,
		Telefone: r.Telefone,
		Empresa:  r.Empresa,
	}
}

type QuoteItemRequest struct {
	ServiceID string `json:"serviceId"`
	Nome      string `json:"nome"`
	Unidade   string `json:"unidade"`
	Preco     Number `json:"preco"`
	Qtd       Number `json:"qtd"`
}

func (r QuoteItemRequest) toItem() entities.QuoteItem {
	return entities.QuoteItem{
		ServiceID: r.ServiceID,
		Nome:      r.Nome,
		Unidade:   r.Unidade,
		Preco:     r.Preco.Float64(),
		Qtd:       r.Qtd.Float64(),
	}
}

func toItems(items []QuoteItemRequest) []entities.QuoteItem {
	if items == nil {
		return nil
	}
	out := make([]entities.QuoteItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.toItem())
	}
	return out
}

// QuoteRequest is the full form payload, shared by creation, previews and
// the unsaved-draft check.
type QuoteRequest struct {
	Status   string              `json:"status"`
	Cliente  *QuoteClientRequest `json:"cliente"`
	Itens    []QuoteItemRequest  `json:"itens"`
	Margem   Number              `json:"margem"`
	Desconto Number              `json:"desconto"`
	Obs      string              `json:"obs"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	input := usecase.QuoteInput{
		Status:   r.Status,
		Itens:    toItems(r.Itens),
		Margem:   r.Margem.Float64(),
		Desconto: r.Desconto.Float64(),
		Obs:      r.Obs,
	}
	if r.Cliente != nil {
		snapshot := r.Cliente.toSnapshot()
		input.Cliente = &snapshot
	}
	return input
}

// QuotePatchRequest carries a partial update; absent fields keep their
// stored value.
type QuotePatchRequest struct {
	Status   *string             `json:"status"`
	Cliente  *QuoteClientRequest `json:"cliente"`
	Itens    *[]QuoteItemRequest `json:"itens"`
	Margem   *Number             `json:"margem"`
	Desconto *Number             `json:"desconto"`
	Obs      *string             `json:"obs"`
}

func (r QuotePatchRequest) ToPatch() usecase.QuotePatch {
	patch := usecase.QuotePatch{
		Status: r.Status,
		Obs:    r.Obs,
	}
	if r.Cliente != nil {
		snapshot := r.Cliente.toSnapshot()
		patch.Cliente = &snapshot
	}
	if r.Itens != nil {
		items := toItems(*r.Itens)
		patch.Itens = &items
	}
	if r.Margem != nil {
		v := r.Margem.Float64()
		patch.Margem = &v
	}
	if r.Desconto != nil {
		v := r.Desconto.Float64()
		patch.Desconto = &v
	}
	return patch
}

// UnsavedCheckRequest asks whether a draft differs from the stored quote.
// An empty ID means the draft was never saved.
type UnsavedCheckRequest struct {
	ID    string       `json:"id"`
	Draft QuoteRequest `json:"draft"`
}
