package catalog

import (
	"context"
	"log"
	"time"

	"github.com/example/storefront-demo/events"
	"github.com/go-monolith/mono"
)

// createProduct handles the catalog.create service request.
func (m *Module) createProduct(ctx context.Context, req CreateProductRequest, _ *mono.Msg) (ProductResponse, error) {
	p, err := m.store.Add(ctx, CreateInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	})
	if err != nil {
		return ProductResponse{}, err
	}

	// Event publishing is best-effort; a failure never fails the operation.
	if m.eventBus != nil {
		event := events.ProductCreatedEvent{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Quantity:  p.Quantity,
			CreatedAt: p.CreatedAt,
		}
		if err := events.ProductCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[catalog] Warning: failed to publish ProductCreated event for product %d: %v", p.ID, err)
		}
	}

	return ProductResponse{Product: p}, nil
}

// getProduct handles the catalog.get service request. A miss is a
// normal outcome, not an error.
func (m *Module) getProduct(_ context.Context, req GetProductRequest, _ *mono.Msg) (GetProductResponse, error) {
	p, ok := m.store.Get(req.ID)
	if !ok {
		return GetProductResponse{Found: false}, nil
	}
	return GetProductResponse{Found: true, Product: &p}, nil
}

// listProducts handles the catalog.list service request.
func (m *Module) listProducts(_ context.Context, _ ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products := m.store.List()
	return ListProductsResponse{Products: products, Total: len(products)}, nil
}

// updateProduct handles the catalog.update service request.
func (m *Module) updateProduct(ctx context.Context, req UpdateProductRequest, _ *mono.Msg) (ProductResponse, error) {
	p, err := m.store.Update(ctx, req.ID, UpdateInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	})
	if err != nil {
		return ProductResponse{}, err
	}

	if m.eventBus != nil {
		event := events.ProductUpdatedEvent{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Quantity:  p.Quantity,
			UpdatedAt: p.UpdatedAt,
		}
		if err := events.ProductUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[catalog] Warning: failed to publish ProductUpdated event for product %d: %v", p.ID, err)
		}
	}

	return ProductResponse{Product: p}, nil
}

// deleteProduct handles the catalog.delete service request.
func (m *Module) deleteProduct(ctx context.Context, req DeleteProductRequest, _ *mono.Msg) (ProductResponse, error) {
	p, err := m.store.Remove(ctx, req.ID)
	if err != nil {
		return ProductResponse{}, err
	}

	if m.eventBus != nil {
		event := events.ProductDeletedEvent{
			ProductID: p.ID,
			Name:      p.Name,
			DeletedAt: time.Now(),
		}
		if err := events.ProductDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[catalog] Warning: failed to publish ProductDeleted event for product %d: %v", p.ID, err)
		}
	}

	return ProductResponse{Product: p}, nil
}

// searchProducts handles the catalog.search service request.
func (m *Module) searchProducts(_ context.Context, req SearchProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products := m.store.Search(req.Term, req.Category)
	return ListProductsResponse{Products: products, Total: len(products)}, nil
}

// advancedSearch handles the catalog.advanced-search service request.
func (m *Module) advancedSearch(_ context.Context, req AdvancedSearchRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products := m.store.AdvancedSearch(req.Filters)
	return ListProductsResponse{Products: products, Total: len(products)}, nil
}

// getStats handles the catalog.stats service request.
func (m *Module) getStats(_ context.Context, _ StatsRequest, _ *mono.Msg) (StatsResponse, error) {
	return StatsResponse{Stats: m.store.Stats()}, nil
}

// lowStock handles the catalog.low-stock service request.
func (m *Module) lowStock(_ context.Context, req LowStockRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products := m.store.LowStockAlerts(req.Threshold)
	return ListProductsResponse{Products: products, Total: len(products)}, nil
}

// exportProducts handles the catalog.export service request.
func (m *Module) exportProducts(_ context.Context, _ ExportRequest, _ *mono.Msg) (ExportResponse, error) {
	data, err := m.store.Export()
	if err != nil {
		return ExportResponse{}, err
	}
	return ExportResponse{Data: data}, nil
}

// importProducts handles the catalog.import service request.
func (m *Module) importProducts(ctx context.Context, req ImportRequest, _ *mono.Msg) (ImportResponse, error) {
	report, err := m.store.Import(ctx, req.Data)
	if err != nil {
		return ImportResponse{}, err
	}
	return ImportResponse{
		Imported: report.Imported,
		Skipped:  report.Skipped,
		Message:  report.Message,
	}, nil
}
