package catalog

import (
	"strings"

	"automall/internal/domain"
)

// All is the wildcard value for category/brand/condition criteria.
const All = "all"

type Criteria struct {
	Search    string
	Category  string
	Brand     string
	MaxPrice  int
	Condition string
}

// DefaultMaxPrice is high enough to pass every product in the catalog;
// the storefront slider starts here.
const DefaultMaxPrice = 50_000_000

func DefaultCriteria() Criteria {
	return Criteria{Category: All, Brand: All, Condition: All, MaxPrice: DefaultMaxPrice}
}

// Active reports whether any filter narrows the result, so the UI can
// offer a reset affordance when a filtered view comes back empty.
func (c Criteria) Active() bool {
	return c.Search != "" || c.Category != All || c.Brand != All ||
		c.Condition != All || c.MaxPrice < DefaultMaxPrice
}

// Filter returns the products matching every criterion, preserving the
// input order. It never reorders; moving items is the reorder engine's job.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	q := strings.ToLower(c.Search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchSearch(p, q) {
			continue
		}
		if c.Category != All && p.Category != c.Category {
			continue
		}
		if c.Brand != All && p.Brand != c.Brand {
			continue
		}
		if p.Price > c.MaxPrice {
			continue
		}
		if c.Condition != All && p.Condition != c.Condition {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchSearch(p domain.Product, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.SKU), q)
}

// Brands lists the distinct brands present in the catalog, in first-seen
// order, for the storefront sidebar.
func Brands(products []domain.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if p.Brand != "" && !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	return out
}
