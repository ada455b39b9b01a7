package cart_test

import (
	"testing"

	"automall/internal/cart"
	"automall/internal/domain"
)

func TestTotal(t *testing.T) {
	items := []domain.CartItem{
		{Product: domain.Product{ID: "a", Price: 1_000_000}, Quantity: 2},
		{Product: domain.Product{ID: "b", Price: 2_000_000}, Quantity: 1},
	}
	if got := cart.Total(items); got != 4_000_000 {
		t.Fatalf("want 4000000, got %d", got)
	}
	if got := cart.Count(items); got != 3 {
		t.Fatalf("want count 3, got %d", got)
	}
}

func TestTotalEmpty(t *testing.T) {
	if got := cart.Total(nil); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}

func TestFormatCLP(t *testing.T) {
	cases := map[int]string{
		0:         "$0",
		950:       "$950",
		680_000:   "$680.000",
		4_000_000: "$4.000.000",
		1_234_567: "$1.234.567",
	}
	for amount, want := range cases {
		if got := cart.FormatCLP(amount); got != want {
			t.Fatalf("FormatCLP(%d): want %q, got %q", amount, want, got)
		}
	}
}
