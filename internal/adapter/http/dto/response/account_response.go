package response

import (
	"time"

	"orcamentix/internal/domain/entities"
)

type CompanyResponse struct {
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
	BrandColor []int  `json:"brandColor,omitempty"`
}

type CapabilitiesResponse struct {
	PDF            bool `json:"pdf"`
	Whatsapp       bool `json:"whatsapp"`
	MaxQuotes      int  `json:"maxQuotes"`
	MaxClients     int  `json:"maxClients"`
	MaxServices    int  `json:"maxServices"`
	CustomBranding bool `json:"customBranding"`
	Analytics      bool `json:"analytics"`
}

type AccountResponse struct {
	Nome       string               `json:"nome"`
	Email      string               `json:"email"`
	Telefone   string               `json:"telefone"`
	Plan       string               `json:"plan"`
	Company    CompanyResponse      `json:"company"`
	Caps       CapabilitiesResponse `json:"caps"`
	UpgradedAt *time.Time           `json:"upgradedAt,omitempty"`
}

func FromAccount(a entities.Account) AccountResponse {
	resp := AccountResponse{
		Nome:     a.Nome,
		Email:    a.Email,
		Telefone: a.Telefone,
		Plan:     a.Plan,
		Company: CompanyResponse{
			Nome:       a.Company.Nome,
			Logo:       a.Company.Logo,
			Tagline:    a.Company.Tagline,
			Telefone:   a.Company.Telefone,
			Email:      a.Company.Email,
			CNPJ:       a.Company.CNPJ,
			Endereco:   a.Company.Endereco,
			Cidade:     a.Company.Cidade,
			Estado:     a.Company.Estado,
			CEP:        a.Company.CEP,
			BrandColor: a.Company.BrandColor,
		},
		Caps: CapabilitiesResponse{
			PDF:            a.Caps.PDF,
			Whatsapp:       a.Caps.Whatsapp,
			MaxQuotes:      a.Caps.MaxQuotes,
			MaxClients:     a.Caps.MaxClients,
			MaxServices:    a.Caps.MaxServices,
			CustomBranding: a.Caps.CustomBranding,
			Analytics:      a.Caps.Analytics,
		},
	}
	if !a.UpgradedAt.IsZero() {
		t := a.UpgradedAt
		resp.UpgradedAt = &t
	}
	return resp
}
