package admin

import (
	"context"
	"errors"

	"github.com/go-monolith/mono"
)

// login handles the admin.login service request.
func (m *Module) login(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	token, session, err := m.manager.Login(ctx, req.Email, req.Password, req.RememberMe)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Token: token, Session: session}, nil
}

// logout handles the admin.logout service request.
func (m *Module) logout(ctx context.Context, _ LogoutRequest, _ *mono.Msg) (LogoutResponse, error) {
	if err := m.manager.Logout(ctx); err != nil {
		return LogoutResponse{}, err
	}
	return LogoutResponse{LoggedOut: true}, nil
}

// checkSession handles the admin.check-session service request. An
// expired session is a normal outcome, not a service error.
func (m *Module) checkSession(ctx context.Context, _ CheckSessionRequest, _ *mono.Msg) (CheckSessionResponse, error) {
	session, err := m.manager.CheckSession(ctx)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return CheckSessionResponse{Active: false, Expired: true}, nil
		}
		return CheckSessionResponse{}, err
	}
	if session == nil {
		return CheckSessionResponse{Active: false}, nil
	}
	return CheckSessionResponse{Active: true, Session: session}, nil
}

// validateToken handles the admin.validate-token service request.
// Verification failures are reported in the response body so callers
// can distinguish a bad token from a broken service.
func (m *Module) validateToken(_ context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	email, err := m.manager.ValidateToken(req.Token)
	if err != nil {
		return ValidateTokenResponse{Valid: false, Error: err.Error()}, nil
	}
	return ValidateTokenResponse{Valid: true, Email: email}, nil
}

// rememberedEmail handles the admin.remembered-email service request.
func (m *Module) rememberedEmail(ctx context.Context, _ RememberedEmailRequest, _ *mono.Msg) (RememberedEmailResponse, error) {
	email, err := m.manager.RememberedEmail(ctx)
	if err != nil {
		return RememberedEmailResponse{}, err
	}
	return RememberedEmailResponse{Email: email}, nil
}

// getTheme handles the admin.get-theme service request.
func (m *Module) getTheme(ctx context.Context, _ GetThemeRequest, _ *mono.Msg) (ThemeResponse, error) {
	theme, err := m.manager.Theme(ctx)
	if err != nil {
		return ThemeResponse{}, err
	}
	return ThemeResponse{Theme: theme}, nil
}

// setTheme handles the admin.set-theme service request.
func (m *Module) setTheme(ctx context.Context, req SetThemeRequest, _ *mono.Msg) (ThemeResponse, error) {
	if err := m.manager.SetTheme(ctx, req.Theme); err != nil {
		return ThemeResponse{}, err
	}
	return ThemeResponse{Theme: req.Theme}, nil
}
