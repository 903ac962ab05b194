package cart

import (
	"strings"

	domain "github.com/example/storefront-demo/domain/cart"
)

const (
	taxRate           = 0.10
	freeShippingAbove = 100.0
	shippingFlatRate  = 9.99
)

// discountRates maps promo codes to their fractional discount. Codes
// are matched case-insensitively.
var discountRates = map[string]float64{
	"SAVE10":  0.10,
	"SAVE20":  0.20,
	"WELCOME": 0.15,
	"SPECIAL": 0.25,
}

// DiscountRate returns the fractional discount for a promo code, or
// zero for an unknown or empty code.
func DiscountRate(code string) float64 {
	return discountRates[strings.ToUpper(code)]
}

// Shipping returns the flat shipping rate, waived above the free
// shipping threshold.
func Shipping(subtotal float64) float64 {
	if subtotal > freeShippingAbove {
		return 0
	}
	return shippingFlatRate
}

// Tax returns the tax due on a subtotal. Tax applies to the
// pre-discount subtotal.
func Tax(subtotal float64) float64 {
	return subtotal * taxRate
}

func subtotal(lines []domain.Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func itemCount(lines []domain.Line) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// OrderSummary prices the current cart with an optional discount code.
// The computation is pure with respect to the cart contents: calling it
// never changes the cart.
func (s *Store) OrderSummary(discountCode string) domain.OrderSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub := subtotal(s.lines)
	discount := sub * DiscountRate(discountCode)
	tax := Tax(sub)
	shipping := Shipping(sub)

	return domain.OrderSummary{
		Subtotal:  sub,
		Tax:       tax,
		Shipping:  shipping,
		Discount:  discount,
		Total:     sub - discount + tax + shipping,
		ItemCount: itemCount(s.lines),
	}
}
