package stockwatch

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/storefront-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// DefaultThreshold marks a product as low on stock at or below this
// quantity.
const DefaultThreshold = 10

// Alert records one low-stock observation.
type Alert struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// Module watches catalog events and records an alert whenever a
// product is created or updated at or below the stock threshold.
type Module struct {
	threshold int

	mu     sync.RWMutex
	alerts []Alert
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a stock watcher. A threshold of zero or less falls
// back to the default.
func NewModule(threshold int) *Module {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Module{threshold: threshold}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "stockwatch"
}

// RegisterEventConsumers subscribes to the catalog's product events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.ProductCreatedV1, m.handleProductCreated, m); err != nil {
		return fmt.Errorf("failed to register ProductCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProductUpdatedV1, m.handleProductUpdated, m); err != nil {
		return fmt.Errorf("failed to register ProductUpdated consumer: %w", err)
	}

	log.Printf("[stockwatch] Registered event consumers: ProductCreated, ProductUpdated")
	return nil
}

func (m *Module) handleProductCreated(_ context.Context, event events.ProductCreatedEvent, _ *mono.Msg) error {
	m.record(event.ProductID, event.Name, event.Quantity, "created")
	return nil
}

func (m *Module) handleProductUpdated(_ context.Context, event events.ProductUpdatedEvent, _ *mono.Msg) error {
	m.record(event.ProductID, event.Name, event.Quantity, "updated")
	return nil
}

// record keeps an alert when the observed quantity is at or below the
// threshold.
func (m *Module) record(productID int64, name string, quantity int, reason string) {
	if quantity > m.threshold {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, Alert{
		ID:        uuid.NewString(),
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		Reason:    reason,
		Timestamp: time.Now(),
	})
	log.Printf("[stockwatch] Low stock: %s (%d left)", name, quantity)
}

// Alerts returns a copy of the recorded alerts.
func (m *Module) Alerts() []Alert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	alerts := make([]Alert, len(m.alerts))
	copy(alerts, m.alerts)
	return alerts
}

// Start brings the watcher online.
func (m *Module) Start(_ context.Context) error {
	log.Printf("[stockwatch] Module started (threshold %d)", m.threshold)
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[stockwatch] Module stopped")
	return nil
}

// Health reports the number of alerts recorded so far.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"alerts":    len(m.alerts),
			"threshold": m.threshold,
		},
	}
}
