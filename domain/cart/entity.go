package cart

// Line is one product-and-quantity pairing in the cart. Name, Price and
// Image are snapshots taken when the product was added; later catalog
// edits do not flow back into existing lines.
type Line struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// OrderSummary is the derived pricing breakdown for the current cart.
// It is recomputed on demand and never persisted.
type OrderSummary struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Shipping  float64 `json:"shipping"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}
