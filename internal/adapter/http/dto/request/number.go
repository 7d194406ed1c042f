package request

import (
	"bytes"
	"strconv"
	"strings"
)

// Number is a float64 that tolerates the loose numeric forms browser
// clients send: JSON numbers, plain numeric strings and pt-BR formatted
// strings such as "1.234,56". Unparseable input coerces to zero instead
// of failing the bind, mirroring how the form fields degrade.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}

	s := string(data)
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Number(v)
		return nil
	}

	// pt-BR form: dots as thousands separators, comma as decimal.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Number(v)
		return nil
	}

	*n = 0
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}
