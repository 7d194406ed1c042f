package response

import (
	"orcamentix/internal/domain/entities"
)

type ServiceResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Unidade   string  `json:"unidade"`
	Categoria string  `json:"categoria"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		Nome:      s.Nome,
		Preco:     s.Preco,
		Unidade:   s.Unidade,
		Categoria: s.Categoria,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

// CatalogResponse lists one registry (units or categories).
type CatalogResponse struct {
	Values []string `json:"values"`
}

// CatalogEntryResponse reports the outcome of an add. Added is false when
// the value already existed and the add was a no-op.
type CatalogEntryResponse struct {
	Nome  string `json:"nome"`
	Added bool   `json:"added"`
}
