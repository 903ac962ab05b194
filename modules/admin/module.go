package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module exposes the admin session manager over the mono service
// container.
type Module struct {
	manager *Manager
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates an admin module around an already constructed
// session manager.
func NewModule(manager *Manager) *Module {
	return &Module{manager: manager}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "admin"
}

// RegisterServices registers the admin request-reply services. The
// framework prefixes them with "services.admin.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	register := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
		return nil
	}

	if err := register("login", helper.RegisterTypedRequestReplyService(
		container, "login", json.Unmarshal, json.Marshal, m.login,
	)); err != nil {
		return err
	}
	if err := register("logout", helper.RegisterTypedRequestReplyService(
		container, "logout", json.Unmarshal, json.Marshal, m.logout,
	)); err != nil {
		return err
	}
	if err := register("check-session", helper.RegisterTypedRequestReplyService(
		container, "check-session", json.Unmarshal, json.Marshal, m.checkSession,
	)); err != nil {
		return err
	}
	if err := register("validate-token", helper.RegisterTypedRequestReplyService(
		container, "validate-token", json.Unmarshal, json.Marshal, m.validateToken,
	)); err != nil {
		return err
	}
	if err := register("remembered-email", helper.RegisterTypedRequestReplyService(
		container, "remembered-email", json.Unmarshal, json.Marshal, m.rememberedEmail,
	)); err != nil {
		return err
	}
	if err := register("get-theme", helper.RegisterTypedRequestReplyService(
		container, "get-theme", json.Unmarshal, json.Marshal, m.getTheme,
	)); err != nil {
		return err
	}
	if err := register("set-theme", helper.RegisterTypedRequestReplyService(
		container, "set-theme", json.Unmarshal, json.Marshal, m.setTheme,
	)); err != nil {
		return err
	}

	log.Printf("[admin] Registered services: services.admin.{login,logout,check-session,validate-token,remembered-email,get-theme,set-theme}")
	return nil
}

// Start loads the persisted session.
func (m *Module) Start(ctx context.Context) error {
	if err := m.manager.Load(ctx); err != nil {
		return fmt.Errorf("failed to load admin session: %w", err)
	}
	log.Println("[admin] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[admin] Module stopped")
	return nil
}

// Health reports whether the session state is loaded.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if !m.manager.Loaded() {
		return mono.HealthStatus{
			Healthy: false,
			Message: "session state not loaded",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}
