package response

import (
	"orcamentix/internal/domain/entities"
)

type ClientResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
		Empresa:  c.Empresa,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
