package entities

import "strings"

// Client is a registry record. Uniqueness is enforced over the normalized
// email OR the normalized phone, never over the name.
type Client struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Empresa  string `json:"empresa"`
}

// NormalizeEmail is the comparison form for the email uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone reduces a phone to its digits-only comparison form.
// A leading country code 55 is stripped when the remainder would still
// exceed the 11 digits of a Brazilian mobile number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if strings.HasPrefix(d, "55") && len(d) > 11 {
		d = d[2:]
	}
	return d
}
