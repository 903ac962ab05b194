package catalog

import (
	"context"
	"errors"
	"testing"
)

func newTestModule(t *testing.T) *Module {
	t.Helper()
	s, _ := newTestStore(t)
	return NewModule(s)
}

func TestCreateProductHandler(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.createProduct(ctx, CreateProductRequest{
		Name:     "Widget",
		Category: "Tools",
		Price:    19.99,
		Quantity: 3,
	}, nil)
	if err != nil {
		t.Fatalf("createProduct failed: %v", err)
	}
	if resp.Product.ID == 0 || resp.Product.Name != "Widget" {
		t.Errorf("resp = %+v", resp)
	}

	_, err = m.createProduct(ctx, CreateProductRequest{Name: "", Category: "", Price: 0}, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("err = %v, want *ValidationError", err)
	}
}

func TestGetProductHandler(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createProduct(ctx, CreateProductRequest{
		Name: "Widget", Category: "Tools", Price: 10, Quantity: 1,
	}, nil)
	if err != nil {
		t.Fatalf("createProduct failed: %v", err)
	}

	resp, err := m.getProduct(ctx, GetProductRequest{ID: created.Product.ID}, nil)
	if err != nil {
		t.Fatalf("getProduct failed: %v", err)
	}
	if !resp.Found || resp.Product.Name != "Widget" {
		t.Errorf("resp = %+v", resp)
	}

	// A miss is reported in the response, not as an error.
	resp, err = m.getProduct(ctx, GetProductRequest{ID: 424242}, nil)
	if err != nil {
		t.Fatalf("getProduct failed: %v", err)
	}
	if resp.Found {
		t.Error("Found = true for a missing product")
	}
}

func TestDeleteProductHandler(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createProduct(ctx, CreateProductRequest{
		Name: "Widget", Category: "Tools", Price: 10, Quantity: 1,
	}, nil)
	if err != nil {
		t.Fatalf("createProduct failed: %v", err)
	}

	resp, err := m.deleteProduct(ctx, DeleteProductRequest{ID: created.Product.ID}, nil)
	if err != nil {
		t.Fatalf("deleteProduct failed: %v", err)
	}
	if resp.Product.ID != created.Product.ID {
		t.Errorf("resp = %+v", resp)
	}

	if _, err := m.deleteProduct(ctx, DeleteProductRequest{ID: created.Product.ID}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
