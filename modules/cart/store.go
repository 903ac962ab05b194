package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	catalogdomain "github.com/example/storefront-demo/domain/catalog"
	domain "github.com/example/storefront-demo/domain/cart"
	"github.com/example/storefront-demo/modules/kvstore"
)

// Store holds the shopping cart and persists it under the "cart" key.
// Lines carry a snapshot of the product's name, price and image taken
// at the moment the product was added; later catalog edits do not
// rewrite lines already in the cart.
type Store struct {
	mu     sync.RWMutex
	kv     kvstore.Store
	lines  []domain.Line
	loaded bool
}

// NewStore creates a cart store backed by the given key-value store.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted cart. A missing key means an empty cart.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, kvstore.KeyCart)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			s.lines = []domain.Line{}
			s.loaded = true
			return nil
		}
		return fmt.Errorf("load cart: %w", err)
	}

	var lines []domain.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	s.lines = lines
	s.loaded = true
	return nil
}

// Loaded reports whether Load has completed successfully.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// persist writes the current lines to the key-value store. The caller
// must hold the write lock. An empty cart is stored as an empty array,
// never as null.
func (s *Store) persist(ctx context.Context) error {
	lines := s.lines
	if lines == nil {
		lines = []domain.Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyCart, data); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// AddItem adds quantity units of the product to the cart, merging with
// an existing line for the same product. The returned message mirrors
// what the storefront shows the shopper. Quantities below one default
// to one.
func (s *Store) AddItem(ctx context.Context, product catalogdomain.Product, quantity int) (string, error) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(product.ID); idx >= 0 {
		line := s.lines[idx]
		if line.Quantity+quantity > product.Quantity {
			return "", fmt.Errorf("maximum available quantity reached: %w", ErrInsufficientStock)
		}
		prev := line.Quantity
		s.lines[idx].Quantity += quantity
		if err := s.persist(ctx); err != nil {
			s.lines[idx].Quantity = prev
			return "", err
		}
		return fmt.Sprintf("%s quantity updated", product.Name), nil
	}

	if quantity > product.Quantity {
		return "", ErrInsufficientStock
	}
	s.lines = append(s.lines, domain.Line{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: quantity,
	})
	if err := s.persist(ctx); err != nil {
		s.lines = s.lines[:len(s.lines)-1]
		return "", err
	}
	return fmt.Sprintf("%s added to cart", product.Name), nil
}

// RemoveItem deletes the line for the given product id.
func (s *Store) RemoveItem(ctx context.Context, productID int64) (domain.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID int64) (domain.Line, error) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return domain.Line{}, ErrLineNotFound
	}
	removed := s.lines[idx]
	prev := s.lines
	s.lines = append(s.lines[:idx:idx], s.lines[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		s.lines = prev
		return domain.Line{}, err
	}
	return removed, nil
}

// UpdateQuantity sets the quantity of an existing line, checking the
// requested amount against the stock currently recorded in the catalog.
// A quantity of zero or less removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) (domain.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		line, err := s.removeLocked(ctx, productID)
		if err != nil {
			return domain.Line{}, err
		}
		line.Quantity = 0
		return line, nil
	}

	idx := s.indexOf(productID)
	if idx < 0 {
		return domain.Line{}, ErrLineNotFound
	}
	if quantity > s.currentStock(ctx, productID) {
		return domain.Line{}, ErrInsufficientStock
	}

	prev := s.lines[idx].Quantity
	s.lines[idx].Quantity = quantity
	if err := s.persist(ctx); err != nil {
		s.lines[idx].Quantity = prev
		return domain.Line{}, err
	}
	return s.lines[idx], nil
}

// currentStock reads the catalog's persisted products to find the stock
// on hand for a product. A missing key or unknown product counts as
// zero stock.
func (s *Store) currentStock(ctx context.Context, productID int64) int {
	data, err := s.kv.Get(ctx, kvstore.KeyProducts)
	if err != nil {
		return 0
	}
	var products []catalogdomain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return 0
	}
	for _, p := range products {
		if p.ID == productID {
			return p.Quantity
		}
	}
	return 0
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.lines
	s.lines = []domain.Line{}
	if err := s.persist(ctx); err != nil {
		s.lines = prev
		return err
	}
	return nil
}

// Items returns a copy of the cart lines.
func (s *Store) Items() []domain.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Line, len(s.lines))
	copy(items, s.lines)
	return items
}

// Total returns the sum of price times quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return subtotal(s.lines)
}

// ItemCount returns the total number of units in the cart.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return itemCount(s.lines)
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}

func (s *Store) indexOf(productID int64) int {
	for i, line := range s.lines {
		if line.ID == productID {
			return i
		}
	}
	return -1
}
