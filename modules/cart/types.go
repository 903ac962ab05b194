package cart

import (
	catalogdomain "github.com/example/storefront-demo/domain/catalog"
	domain "github.com/example/storefront-demo/domain/cart"
)

// AddItemRequest adds a quantity of a product to the cart. The product
// carries the stock and the snapshot fields recorded on the new line.
type AddItemRequest struct {
	Product  catalogdomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// AddItemResponse reports the storefront message and the new cart size.
type AddItemResponse struct {
	Message   string `json:"message"`
	ItemCount int    `json:"itemCount"`
}

// RemoveItemRequest removes a product's line from the cart.
type RemoveItemRequest struct {
	ProductID int64 `json:"productId"`
}

// UpdateQuantityRequest sets the quantity of an existing line. Zero or
// less removes the line.
type UpdateQuantityRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// LineResponse returns a single cart line.
type LineResponse struct {
	Line domain.Line `json:"line"`
}

// ItemsRequest lists the cart contents.
type ItemsRequest struct{}

// ItemsResponse returns the cart lines with the running totals.
type ItemsResponse struct {
	Items     []domain.Line `json:"items"`
	Total     float64       `json:"total"`
	ItemCount int           `json:"itemCount"`
}

// ClearRequest empties the cart.
type ClearRequest struct{}

// ClearResponse acknowledges the cleared cart.
type ClearResponse struct {
	Cleared bool `json:"cleared"`
}

// SummaryRequest prices the cart with an optional discount code.
type SummaryRequest struct {
	DiscountCode string `json:"discountCode"`
}

// SummaryResponse returns the priced order.
type SummaryResponse struct {
	Summary domain.OrderSummary `json:"summary"`
}
