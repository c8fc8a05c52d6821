package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeDecimalToken rewrites a human-entered number into the canonical
// dot-decimal form. Spaces and NBSP act as thousands separators. When a
// comma is present it is the decimal separator and any dots are thousands
// separators, so "1.234,56" becomes "1234.56" and "1,5" becomes "1.5".
func NormalizeDecimalToken(token string) string {
	s := strings.TrimSpace(token)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

func ParseDecimal(token string) (decimal.Decimal, error) {
	return decimal.NewFromString(NormalizeDecimalToken(token))
}
