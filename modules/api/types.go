package api

import (
	domain "github.com/example/storefront-demo/domain/admin"
)

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse represents a successful admin login.
type LoginResponse struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

// SessionResponse reports the current admin session.
type SessionResponse struct {
	Active  bool            `json:"active"`
	Expired bool            `json:"expired,omitempty"`
	Session *domain.Session `json:"session,omitempty"`
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// UpdateProductRequest represents a partial product update. Absent
// fields keep their current values.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Image    *string  `json:"image"`
}

// AddToCartRequest adds a product to the cart by id.
type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemRequest sets a cart line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// SetThemeRequest stores the UI theme.
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// MessageResponse carries a storefront message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
