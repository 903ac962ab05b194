package cart

import "errors"

var (
	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the stock recorded in the catalog.
	ErrInsufficientStock = errors.New("insufficient stock available")

	// ErrLineNotFound is returned when a cart operation references a
	// product that is not in the cart.
	ErrLineNotFound = errors.New("cart item not found")
)
