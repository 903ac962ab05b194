package cart

import (
	"context"

	"github.com/go-monolith/mono"
)

// addItem handles the cart.add service request.
func (m *Module) addItem(ctx context.Context, req AddItemRequest, _ *mono.Msg) (AddItemResponse, error) {
	message, err := m.store.AddItem(ctx, req.Product, req.Quantity)
	if err != nil {
		return AddItemResponse{}, err
	}
	return AddItemResponse{Message: message, ItemCount: m.store.ItemCount()}, nil
}

// removeItem handles the cart.remove service request.
func (m *Module) removeItem(ctx context.Context, req RemoveItemRequest, _ *mono.Msg) (LineResponse, error) {
	line, err := m.store.RemoveItem(ctx, req.ProductID)
	if err != nil {
		return LineResponse{}, err
	}
	return LineResponse{Line: line}, nil
}

// updateQuantity handles the cart.update-quantity service request.
func (m *Module) updateQuantity(ctx context.Context, req UpdateQuantityRequest, _ *mono.Msg) (LineResponse, error) {
	line, err := m.store.UpdateQuantity(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return LineResponse{}, err
	}
	return LineResponse{Line: line}, nil
}

// listItems handles the cart.items service request.
func (m *Module) listItems(_ context.Context, _ ItemsRequest, _ *mono.Msg) (ItemsResponse, error) {
	return ItemsResponse{
		Items:     m.store.Items(),
		Total:     m.store.Total(),
		ItemCount: m.store.ItemCount(),
	}, nil
}

// clearCart handles the cart.clear service request.
func (m *Module) clearCart(ctx context.Context, _ ClearRequest, _ *mono.Msg) (ClearResponse, error) {
	if err := m.store.Clear(ctx); err != nil {
		return ClearResponse{}, err
	}
	return ClearResponse{Cleared: true}, nil
}

// orderSummary handles the cart.summary service request.
func (m *Module) orderSummary(_ context.Context, req SummaryRequest, _ *mono.Msg) (SummaryResponse, error) {
	return SummaryResponse{Summary: m.store.OrderSummary(req.DiscountCode)}, nil
}
