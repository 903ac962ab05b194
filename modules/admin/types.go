package admin

import (
	domain "github.com/example/storefront-demo/domain/admin"
)

// LoginRequest carries the admin sign-in form.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse returns the signed token and the new session.
type LoginResponse struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

// LogoutRequest signs the admin out.
type LogoutRequest struct{}

// LogoutResponse acknowledges the sign-out.
type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

// CheckSessionRequest asks whether an admin session is active.
type CheckSessionRequest struct{}

// CheckSessionResponse reports the active session, if any. Expired
// reports a session that was cleared because it outlived its TTL.
type CheckSessionResponse struct {
	Active  bool            `json:"active"`
	Expired bool            `json:"expired"`
	Session *domain.Session `json:"session,omitempty"`
}

// ValidateTokenRequest verifies a bearer token.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse reports the verification outcome. Invalid
// tokens produce Valid=false with Error set, not a service error.
type ValidateTokenResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
}

// RememberedEmailRequest reads the remember-me email.
type RememberedEmailRequest struct{}

// RememberedEmailResponse returns the stored email, empty when none.
type RememberedEmailResponse struct {
	Email string `json:"email"`
}

// GetThemeRequest reads the stored UI theme.
type GetThemeRequest struct{}

// SetThemeRequest stores a UI theme.
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse returns the current theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
