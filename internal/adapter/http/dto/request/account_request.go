package request

import (
	"orcamentix/internal/domain/entities"
	"orcamentix/internal/usecase"
)

type CompanyRequest struct {
	Nome       string `json:"nome"`
	Logo       string `json:"logo"`
	Tagline    string `json:"tagline"`
	Telefone   string `json:"telefone"`
	Email      string `json:"email"`
	CNPJ       string `json:"cnpj"`
	Endereco   string `json:"endereco"`
	Cidade     string `json:"cidade"`
	Estado     string `json:"estado"`
	CEP        string `json:"cep"`
	BrandColor []int  `json:"brandColor"`
}

func (r CompanyRequest) toEntity() entities.Company {
	return entities.Company{
		Nome:       r.Nome,
		Logo:       r.Logo,
		Tagline:    r.Tagline,
		Telefone:   r.Telefone,
		Email:      r.Email,
		CNPJ:       r.CNPJ,
		Endereco:   r.Endereco,
		Cidade:     r.Cidade,
		Estado:     r.Estado,
		CEP:        r.CEP,
		BrandColor: r.BrandColor,
	}
}

// AccountRequest patches the profile and company blocks; absent fields keep
// their stored value. Plan changes have their own endpoint.
type AccountRequest struct {
	Nome     *string         `json:"nome"`
	Email    *string         `json:"email"`
	Telefone *string         `json:"telefone"`
	Company  *CompanyRequest `json:"company"`
}

func (r AccountRequest) ToInput() usecase.AccountInput {
	input := usecase.AccountInput{
		Nome:     r.Nome,
		Email:    r.Email,
		Telefone: r.Telefone,
	}
	if r.Company != nil {
		company := r.Company.toEntity()
		input.Company = &company
	}
	return input
}

type PlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}
