package stockwatch

import (
	"context"
	"testing"
	"time"

	"github.com/example/storefront-demo/events"
)

func TestRecordAtOrBelowThreshold(t *testing.T) {
	m := NewModule(10)
	ctx := context.Background()

	if err := m.handleProductCreated(ctx, events.ProductCreatedEvent{
		ProductID: 1, Name: "Widget", Quantity: 10, CreatedAt: time.Now(),
	}, nil); err != nil {
		t.Fatalf("handleProductCreated failed: %v", err)
	}
	if err := m.handleProductUpdated(ctx, events.ProductUpdatedEvent{
		ProductID: 2, Name: "Gadget", Quantity: 11, UpdatedAt: time.Now(),
	}, nil); err != nil {
		t.Fatalf("handleProductUpdated failed: %v", err)
	}

	alerts := m.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1 (threshold is inclusive)", len(alerts))
	}
	if alerts[0].ProductID != 1 || alerts[0].Reason != "created" {
		t.Errorf("alert = %+v", alerts[0])
	}
	if alerts[0].ID == "" {
		t.Error("alert id should be set")
	}
}

func TestDefaultThreshold(t *testing.T) {
	m := NewModule(0)
	if m.threshold != DefaultThreshold {
		t.Errorf("threshold = %d, want %d", m.threshold, DefaultThreshold)
	}
}

func TestAlertsReturnsCopy(t *testing.T) {
	m := NewModule(10)
	m.record(1, "Widget", 5, "updated")

	alerts := m.Alerts()
	alerts[0].Name = "changed"
	if m.Alerts()[0].Name != "Widget" {
		t.Error("Alerts should return a copy")
	}
}
