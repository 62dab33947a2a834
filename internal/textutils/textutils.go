// Package textutils provides text normalization and amount extraction.
// Every keyword and substring comparison in the system runs over text
// normalized here; callers never compare raw input directly.
package textutils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// amountPattern matches the first decimal number in a message. The comma
// is a decimal separator, never a thousands separator.
var amountPattern = regexp.MustCompile(`\d+[.,]?\d*`)

// Normalize lower-cases the input and strips combining diacritical marks
// via canonical decomposition. The result is not recomposed. Normalize is
// pure and idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the
		// lower-cased input so matching still has something to work with.
		return s
	}
	return out
}

// ExtractAmount returns the first decimal number found in the text.
// Returns false when the text contains no numeric pattern.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	match := amountPattern.FindString(text)
	if match == "" {
		return decimal.Zero, false
	}

	match = strings.ReplaceAll(match, ",", ".")
	// A separator with no fractional digits ("50.") is still a valid amount.
	match = strings.TrimSuffix(match, ".")
	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
