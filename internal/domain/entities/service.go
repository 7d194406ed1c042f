package entities

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Service is a reusable line-item template. Duplicates are detected over the
// composite key nome+unidade+categoria, not the name alone.
type Service struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Unidade   string  `json:"unidade"`
	Categoria string  `json:"categoria"`
}

// NormalizeServiceName is the comparison form for the composite duplicate
// key: NFKC-folded, trimmed and lowercased, so "Pintura" and "pintura"
// collide.
func NormalizeServiceName(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}

// CompositeKey identifies a service for duplicate detection.
func (s Service) CompositeKey() string {
	return NormalizeServiceName(s.Nome) + "|" + s.Unidade + "|" + s.Categoria
}

// Snapshot copies the service into a quote line with the given quantity.
func (s Service) Snapshot(qtd float64) QuoteItem {
	return QuoteItem{
		ServiceID: s.ID,
		Nome:      s.Nome,
		Unidade:   s.Unidade,
		Preco:     s.Preco,
		Qtd:       qtd,
	}
}
