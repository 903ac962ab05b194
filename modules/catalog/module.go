package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/storefront-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module exposes the catalog store over the mono service container and
// publishes product lifecycle events.
type Module struct {
	store    *Store
	eventBus mono.EventBus
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
	_ mono.EventBusAwareModule   = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates a catalog module around an already constructed
// store.
func NewModule(store *Store) *Module {
	return &Module{store: store}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
}

// SetEventBus receives the event bus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ProductCreatedV1.ToBase(),
		events.ProductUpdatedV1.ToBase(),
		events.ProductDeletedV1.ToBase(),
	}
}

// RegisterServices registers the catalog request-reply services. The
// framework prefixes them with "services.catalog.".
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	register := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
		return nil
	}

	if err := register("create", helper.RegisterTypedRequestReplyService(
		container, "create", json.Unmarshal, json.Marshal, m.createProduct,
	)); err != nil {
		return err
	}
	if err := register("get", helper.RegisterTypedRequestReplyService(
		container, "get", json.Unmarshal, json.Marshal, m.getProduct,
	)); err != nil {
		return err
	}
	if err := register("list", helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listProducts,
	)); err != nil {
		return err
	}
	if err := register("update", helper.RegisterTypedRequestReplyService(
		container, "update", json.Unmarshal, json.Marshal, m.updateProduct,
	)); err != nil {
		return err
	}
	if err := register("delete", helper.RegisterTypedRequestReplyService(
		container, "delete", json.Unmarshal, json.Marshal, m.deleteProduct,
	)); err != nil {
		return err
	}
	if err := register("search", helper.RegisterTypedRequestReplyService(
		container, "search", json.Unmarshal, json.Marshal, m.searchProducts,
	)); err != nil {
		return err
	}
	if err := register("advanced-search", helper.RegisterTypedRequestReplyService(
		container, "advanced-search", json.Unmarshal, json.Marshal, m.advancedSearch,
	)); err != nil {
		return err
	}
	if err := register("stats", helper.RegisterTypedRequestReplyService(
		container, "stats", json.Unmarshal, json.Marshal, m.getStats,
	)); err != nil {
		return err
	}
	if err := register("low-stock", helper.RegisterTypedRequestReplyService(
		container, "low-stock", json.Unmarshal, json.Marshal, m.lowStock,
	)); err != nil {
		return err
	}
	if err := register("export", helper.RegisterTypedRequestReplyService(
		container, "export", json.Unmarshal, json.Marshal, m.exportProducts,
	)); err != nil {
		return err
	}
	if err := register("import", helper.RegisterTypedRequestReplyService(
		container, "import", json.Unmarshal, json.Marshal, m.importProducts,
	)); err != nil {
		return err
	}

	log.Printf("[catalog] Registered services: services.catalog.{create,get,list,update,delete,search,advanced-search,stats,low-stock,export,import}")
	return nil
}

// Start loads the persisted catalog, seeding it on first use.
func (m *Module) Start(ctx context.Context) error {
	if err := m.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("[catalog] Module started (%d products)", m.store.Count())
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[catalog] Module stopped")
	return nil
}

// Health reports whether the catalog is loaded.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if !m.store.Loaded() {
		return mono.HealthStatus{
			Healthy: false,
			Message: "catalog not loaded",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"products": m.store.Count(),
		},
	}
}
