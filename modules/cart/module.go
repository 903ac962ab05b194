package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module exposes the cart store over the mono service container.
type Module struct {
	store *Store
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a cart module around an already constructed store.
func NewModule(store *Store) *Module {
	return &Module{store: store}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cart"
}

// RegisterServices registers the cart request-reply services. The
// framework prefixes them with "services.cart.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	register := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
		return nil
	}

	if err := register("add", helper.RegisterTypedRequestReplyService(
		container, "add", json.Unmarshal, json.Marshal, m.addItem,
	)); err != nil {
		return err
	}
	if err := register("remove", helper.RegisterTypedRequestReplyService(
		container, "remove", json.Unmarshal, json.Marshal, m.removeItem,
	)); err != nil {
		return err
	}
	if err := register("update-quantity", helper.RegisterTypedRequestReplyService(
		container, "update-quantity", json.Unmarshal, json.Marshal, m.updateQuantity,
	)); err != nil {
		return err
	}
	if err := register("items", helper.RegisterTypedRequestReplyService(
		container, "items", json.Unmarshal, json.Marshal, m.listItems,
	)); err != nil {
		return err
	}
	if err := register("clear", helper.RegisterTypedRequestReplyService(
		container, "clear", json.Unmarshal, json.Marshal, m.clearCart,
	)); err != nil {
		return err
	}
	if err := register("summary", helper.RegisterTypedRequestReplyService(
		container, "summary", json.Unmarshal, json.Marshal, m.orderSummary,
	)); err != nil {
		return err
	}

	log.Printf("[cart] Registered services: services.cart.{add,remove,update-quantity,items,clear,summary}")
	return nil
}

// Start loads the persisted cart.
func (m *Module) Start(ctx context.Context) error {
	if err := m.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	log.Printf("[cart] Module started (%d items)", m.store.ItemCount())
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[cart] Module stopped")
	return nil
}

// Health reports whether the cart is loaded.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if !m.store.Loaded() {
		return mono.HealthStatus{
			Healthy: false,
			Message: "cart not loaded",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"items": m.store.ItemCount(),
		},
	}
}
