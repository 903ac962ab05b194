package cart

import (
	"context"
	"reflect"
	"testing"

	catalogdomain "github.com/example/storefront-demo/domain/catalog"
)

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"SAVE10", 0.10},
		{"save10", 0.10},
		{"Save20", 0.20},
		{"WELCOME", 0.15},
		{"special", 0.25},
		{"NOPE", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := DiscountRate(tt.code); !almostEqual(got, tt.want) {
			t.Errorf("DiscountRate(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestShipping(t *testing.T) {
	if got := Shipping(100); !almostEqual(got, 9.99) {
		t.Errorf("Shipping(100) = %v, want 9.99 (threshold is exclusive)", got)
	}
	if got := Shipping(100.01); !almostEqual(got, 0) {
		t.Errorf("Shipping(100.01) = %v, want 0", got)
	}
	if got := Shipping(50); !almostEqual(got, 9.99) {
		t.Errorf("Shipping(50) = %v, want 9.99", got)
	}
}

func TestOrderSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("free shipping above threshold", func(t *testing.T) {
		s, _ := newTestStore(t)
		product := catalogdomain.Product{ID: 1, Name: "Widget", Price: 75, Quantity: 10}
		if _, err := s.AddItem(ctx, product, 2); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}

		summary := s.OrderSummary("")
		if !almostEqual(summary.Subtotal, 150) {
			t.Errorf("Subtotal = %v, want 150", summary.Subtotal)
		}
		if !almostEqual(summary.Shipping, 0) {
			t.Errorf("Shipping = %v, want 0", summary.Shipping)
		}
		if !almostEqual(summary.Tax, 15) {
			t.Errorf("Tax = %v, want 15", summary.Tax)
		}
		if !almostEqual(summary.Total, 165) {
			t.Errorf("Total = %v, want 165", summary.Total)
		}
		if summary.ItemCount != 2 {
			t.Errorf("ItemCount = %d, want 2", summary.ItemCount)
		}
	})

	t.Run("discount with flat shipping", func(t *testing.T) {
		s, _ := newTestStore(t)
		product := catalogdomain.Product{ID: 1, Name: "Widget", Price: 50, Quantity: 10}
		if _, err := s.AddItem(ctx, product, 1); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}

		summary := s.OrderSummary("save10")
		if !almostEqual(summary.Discount, 5) {
			t.Errorf("Discount = %v, want 5", summary.Discount)
		}
		if !almostEqual(summary.Shipping, 9.99) {
			t.Errorf("Shipping = %v, want 9.99", summary.Shipping)
		}
		if !almostEqual(summary.Tax, 5) {
			t.Errorf("Tax = %v, want 5 (tax applies before discount)", summary.Tax)
		}
		if !almostEqual(summary.Total, 59.99) {
			t.Errorf("Total = %v, want 59.99", summary.Total)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		s, _ := newTestStore(t)
		summary := s.OrderSummary("")
		if !almostEqual(summary.Subtotal, 0) || summary.ItemCount != 0 {
			t.Errorf("summary = %+v, want zeroed subtotal and count", summary)
		}
		if !almostEqual(summary.Shipping, 9.99) {
			t.Errorf("Shipping = %v, want 9.99", summary.Shipping)
		}
	})

	t.Run("pricing does not mutate the cart", func(t *testing.T) {
		s, _ := newTestStore(t)
		product := catalogdomain.Product{ID: 1, Name: "Widget", Price: 20, Quantity: 10}
		if _, err := s.AddItem(ctx, product, 3); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}

		first := s.OrderSummary("welcome")
		second := s.OrderSummary("welcome")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("summaries differ: %+v vs %+v", first, second)
		}
		if s.ItemCount() != 3 {
			t.Errorf("ItemCount = %d, want 3", s.ItemCount())
		}
	})
}
