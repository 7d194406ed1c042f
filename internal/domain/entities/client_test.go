package entities

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"  Maria@Email.com ": "maria@email.com",
		"JOAO@EMAIL.COM":     "joao@email.com",
		"":                   "",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"(11) 98888-1111":   "11988881111",
		"11 98888 1111":     "11988881111",
		"+55 11 98888-1111": "11988881111",
		"5511988881111":     "11988881111",
		// 55 is only a country code when enough digits remain after it.
		"5598888":           "5598888",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}
