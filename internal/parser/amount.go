package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// normalizeAmount converts a raw numeric token with locale-ambiguous
// separators to a float64. "1.234,56", "1,234.56" and "1234.56" all
// normalize to 1234.56.
//
// The last separator in the token is the decimal point only when exactly
// two digits follow it; any other trailing digit count means every
// separator was a thousands mark and the token is an integer.
func normalizeAmount(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, fmt.Errorf("no digits in amount %q", raw)
	}

	lastSep := strings.LastIndexAny(s, ".,")
	if lastSep >= 0 {
		intPart := stripSeparators(s[:lastSep])
		decPart := s[lastSep+1:]
		if len(decPart) == 2 {
			s = intPart + "." + decPart
		} else {
			s = intPart + decPart
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return v, nil
}

func stripSeparators(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", "")
}
