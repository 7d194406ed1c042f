package request

import (
	"orcamentix/internal/usecase"
)

type ServiceRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Preco     Number `json:"preco"`
	Unidade   string `json:"unidade"`
	Categoria string `json:"categoria"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Nome:      r.Nome,
		Preco:     r.Preco.Float64(),
		Unidade:   r.Unidade,
		Categoria: r.Categoria,
	}
}

// CatalogEntryRequest adds one unit or category to the shared registries.
type CatalogEntryRequest struct {
	Nome string `json:"nome" binding:"required"`
}
