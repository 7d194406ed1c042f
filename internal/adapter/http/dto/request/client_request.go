package request

import (
	"orcamentix/internal/usecase"
)

type ClientRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}

func (r ClientRequest) ToInput() usecase.ClientInput {
	return usecase.ClientInput{
		Nome:     r.Nome,
		Email:    r.Email,
		Telefone: r.Telefone,
		Empresa:  r.Empresa,
	}
}
