package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseGermanAmount converts a German-locale monetary string such as
// "1.234,56 €" or "-12,30" into a decimal. The dot is a thousands separator
// and the comma the decimal separator; a trailing currency mark and
// non-breaking spaces are tolerated.
func ParseGermanAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, " ", " ")
	cleaned = strings.ReplaceAll(cleaned, "€", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount string %q", s)
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string %q: %w", s, err)
	}
	return dec, nil
}
