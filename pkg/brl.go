package pkg

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary value in the fixed pt-BR currency format used
// across PDFs and share links, e.g. 1234.5 -> "R$ 1.234,50".
func FormatBRL(v float64) string {
	return "R$ " + brlPrinter.Sprintf("%.2f", v)
}
