package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// SessionPort is the interface other modules use to verify admin
// tokens.
type SessionPort interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Adapter implements SessionPort over the admin service container.
type Adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new Adapter.
func NewAdapter(container mono.ServiceContainer) *Adapter {
	return &Adapter{
		container: container,
	}
}

// ValidateToken verifies a token and returns the admin email it was
// issued for.
func (a *Adapter) ValidateToken(ctx context.Context, token string) (string, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"validate-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", fmt.Errorf("validate-token request failed: %w", err)
	}

	if !resp.Valid {
		return "", fmt.Errorf("token validation failed: %s", resp.Error)
	}
	return resp.Email, nil
}
