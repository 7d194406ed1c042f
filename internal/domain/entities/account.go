package entities

import "time"

// Company is the branding block rendered on plus/premium PDF templates.
// BrandColor is an RGB triple; nil means the template default.
type Company struct {
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

// Account is the single local account record: profile, current plan and the
// capability set persisted as of the last plan change. Caps are derived
// state; any load that finds them incomplete rebuilds them from Plan.
type Account struct {
	Nome       string       `json:"nome"`
	Email      string       `json:"email"`
	Telefone   string       `json:"telefone"`
	Plan       string       `json:"plan"`
	Company    Company      `json:"company"`
	Caps       Capabilities `json:"caps"`
	UpgradedAt time.Time    `json:"upgradedAt"`
}

// PdfCompany resolves the company block used by the PDF templates, applying
// the profile-level fallbacks: company name falls back to the account name
// and then to a generic placeholder, contact fields fall back to the
// account's.
func (a Account) PdfCompany() Company {
	c := a.Company
	if c.Nome == "" {
		c.Nome = a.Nome
	}
	if c.Nome == "" {
		c.Nome = "Sua Empresa"
	}
	if c.Telefone == "" {
		c.Telefone = a.Telefone
	}
	if c.Email == "" {
		c.Email = a.Email
	}
	return c
}
