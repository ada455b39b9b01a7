// Package cart aggregates cart lines: totals, item counts and CLP
// formatting for the storefront and drawer views.
package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"automall/internal/domain"
)

// Chilean pesos carry no decimals; grouping follows es-CL (dots).
var clp = message.NewPrinter(language.MustParse("es-CL"))

// Total sums price*quantity over all lines. Prices are whole pesos, so
// plain integer arithmetic is exact.
func Total(items []domain.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}

// Count sums quantities across lines, for the header badge.
func Count(items []domain.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// FormatCLP renders an amount like $1.234.567.
func FormatCLP(amount int) string {
	return clp.Sprintf("$%d", amount)
}
