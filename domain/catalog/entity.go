package catalog

import (
	"time"
)

// Product is a single catalog record. JSON field names match the
// document format persisted under the "products" key.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Value is the inventory value of the product (price times stock).
func (p Product) Value() float64 {
	return p.Price * float64(p.Quantity)
}

// CategoryStats aggregates the products of one category.
type CategoryStats struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
	TotalStock int     `json:"totalStock"`
}

// Stats is the dashboard aggregate over the whole catalog.
type Stats struct {
	TotalProducts int                      `json:"totalProducts"`
	TotalStock    int                      `json:"totalStock"`
	TotalValue    float64                  `json:"totalValue"`
	LowStockItems int                      `json:"lowStockItems"`
	Categories    map[string]CategoryStats `json:"categoryStats"`
}
