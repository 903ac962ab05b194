package catalog

import (
	"encoding/json"

	domain "github.com/example/storefront-demo/domain/catalog"
)

// CreateInput carries the caller-supplied fields for a new product.
type CreateInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// UpdateInput is a patch over the mutable product fields. Nil fields
// are left untouched; id and createdAt can never be patched.
type UpdateInput struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Image    *string  `json:"image,omitempty"`
}

// SearchFilters combines the advanced-search criteria. Every filter is
// applied conjunctively; zero-valued and nil fields do not constrain
// the result.
type SearchFilters struct {
	Search   string   `json:"search,omitempty"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	MinStock *int     `json:"minStock,omitempty"`
	MaxStock *int     `json:"maxStock,omitempty"`
	LowStock bool     `json:"lowStock,omitempty"`
}

// ValidationResult reports the outcome of Validate.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ImportReport summarizes a bulk import.
type ImportReport struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// Service request/response payloads.

// CreateProductRequest is the request for the catalog.create service.
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// ProductResponse carries a single product.
type ProductResponse struct {
	Product domain.Product `json:"product"`
}

// GetProductRequest is the request for the catalog.get service.
type GetProductRequest struct {
	ID int64 `json:"id"`
}

// GetProductResponse reports the lookup result. Found is false when no
// product matches; the lookup itself never fails.
type GetProductResponse struct {
	Found   bool            `json:"found"`
	Product *domain.Product `json:"product,omitempty"`
}

// ListProductsRequest is the request for the catalog.list service.
type ListProductsRequest struct{}

// ListProductsResponse carries a product list.
type ListProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// UpdateProductRequest is the request for the catalog.update service.
type UpdateProductRequest struct {
	ID       int64    `json:"id"`
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Image    *string  `json:"image,omitempty"`
}

// DeleteProductRequest is the request for the catalog.delete service.
type DeleteProductRequest struct {
	ID int64 `json:"id"`
}

// SearchProductsRequest is the request for the catalog.search service.
type SearchProductsRequest struct {
	Term     string `json:"term"`
	Category string `json:"category"`
}

// AdvancedSearchRequest is the request for catalog.advanced-search.
type AdvancedSearchRequest struct {
	Filters SearchFilters `json:"filters"`
}

// StatsRequest is the request for the catalog.stats service.
type StatsRequest struct{}

// StatsResponse carries the catalog aggregates.
type StatsResponse struct {
	Stats domain.Stats `json:"stats"`
}

// LowStockRequest is the request for the catalog.low-stock service.
// A non-positive threshold uses the default of 10.
type LowStockRequest struct {
	Threshold int `json:"threshold"`
}

// ExportRequest is the request for the catalog.export service.
type ExportRequest struct{}

// ExportResponse carries the serialized product list.
type ExportResponse struct {
	Data json.RawMessage `json:"data"`
}

// ImportRequest is the request for the catalog.import service.
type ImportRequest struct {
	Data json.RawMessage `json:"data"`
}

// ImportResponse reports the import outcome.
type ImportResponse struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}
