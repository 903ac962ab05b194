package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	domain "github.com/example/storefront-demo/domain/catalog"
	"github.com/example/storefront-demo/modules/kvstore"
)

const (
	maxNameLength = 100

	// DefaultLowStockThreshold is the stock level at or below which a
	// product counts as running low.
	DefaultLowStockThreshold = 10
)

// Store is the sole owner of the product set. Every mutation is
// validated, applied in memory and persisted back to the kvstore as one
// step under the store lock; a rejected or failed mutation leaves the
// set unchanged.
type Store struct {
	mu       sync.RWMutex
	kv       kvstore.Store
	ids      IDGenerator
	products []domain.Product
	loaded   bool
}

// NewStore creates a catalog store backed by the given kvstore. A nil
// generator falls back to clock-derived ids.
func NewStore(kv kvstore.Store, ids IDGenerator) *Store {
	if ids == nil {
		ids = NewClockIDGenerator()
	}
	return &Store{kv: kv, ids: ids}
}

// Load reads the persisted product list, installing the seed catalog on
// first use. Calling it again is a no-op.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	data, err := s.kv.Get(ctx, kvstore.KeyProducts)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			return fmt.Errorf("failed to load products: %w", err)
		}
		s.products = seedProducts(time.Now())
		if err := s.persist(ctx); err != nil {
			s.products = nil
			return err
		}
		s.loaded = true
		return nil
	}

	if err := json.Unmarshal(data, &s.products); err != nil {
		return fmt.Errorf("failed to decode products: %w", err)
	}
	s.loaded = true
	return nil
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Count returns the number of products in the set.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// persist writes the product list back. Callers must hold the lock.
func (s *Store) persist(ctx context.Context) error {
	products := s.products
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyProducts, data); err != nil {
		return fmt.Errorf("failed to persist products: %w", err)
	}
	return nil
}

// Validate checks a product payload against the catalog rules without
// touching store state.
func Validate(input CreateInput) ValidationResult {
	var errs []string

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, "product name is required")
	} else if len(input.Name) > maxNameLength {
		errs = append(errs, "product name must be at most 100 characters")
	}
	if strings.TrimSpace(input.Category) == "" {
		errs = append(errs, "category is required")
	}
	if input.Price <= 0 {
		errs = append(errs, "price must be greater than 0")
	}
	if input.Quantity < 0 {
		errs = append(errs, "quantity must be 0 or greater")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Add creates a product from input, assigns a fresh id and persists the
// catalog. Invalid input is rejected with a *ValidationError.
func (s *Store) Add(ctx context.Context, input CreateInput) (domain.Product, error) {
	if res := Validate(input); !res.Valid {
		return domain.Product{}, &ValidationError{Errors: res.Errors}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Product{
		ID:        s.ids.NextID(),
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		Image:     input.Image,
		CreatedAt: time.Now(),
	}
	s.products = append(s.products, p)
	if err := s.persist(ctx); err != nil {
		s.products = s.products[:len(s.products)-1]
		return domain.Product{}, err
	}
	return p, nil
}

// Update merges patch into the product matching id, stamps updatedAt
// and persists. The merged record must still pass validation.
func (s *Store) Update(ctx context.Context, id int64, patch UpdateInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Product{}, ErrNotFound
	}

	merged := s.products[idx]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.Image != nil {
		merged.Image = *patch.Image
	}

	res := Validate(CreateInput{
		Name:     merged.Name,
		Category: merged.Category,
		Price:    merged.Price,
		Quantity: merged.Quantity,
		Image:    merged.Image,
	})
	if !res.Valid {
		return domain.Product{}, &ValidationError{Errors: res.Errors}
	}

	merged.UpdatedAt = time.Now()
	prev := s.products[idx]
	s.products[idx] = merged
	if err := s.persist(ctx); err != nil {
		s.products[idx] = prev
		return domain.Product{}, err
	}
	return merged, nil
}

// Remove deletes the product matching id and persists, returning the
// removed record.
func (s *Store) Remove(ctx context.Context, id int64) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Product{}, ErrNotFound
	}

	removed := s.products[idx]
	prev := s.products
	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		s.products = prev
		return domain.Product{}, err
	}
	return removed, nil
}

// Get returns the product with the given id. The second return is false
// when no product matches; Get never fails.
func (s *Store) Get(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.products[idx], true
	}
	return domain.Product{}, false
}

// List returns a copy of the full product set.
func (s *Store) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Search matches term case-insensitively against name and category,
// optionally narrowed to an exact category. Empty arguments match
// everything.
func (s *Store) Search(term, category string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AdvancedSearch applies every set filter conjunctively.
func (s *Store) AdvancedSearch(filters SearchFilters) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filters.Search)
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if filters.Search != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		if filters.MinStock != nil && p.Quantity < *filters.MinStock {
			continue
		}
		if filters.MaxStock != nil && p.Quantity > *filters.MaxStock {
			continue
		}
		if filters.LowStock && p.Quantity > DefaultLowStockThreshold {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Stats aggregates the catalog for the dashboard. Note the low-stock
// counter uses a strict < 10 while LowStockAlerts uses <= threshold;
// both bounds are part of the established behavior.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{Categories: make(map[string]domain.CategoryStats)}
	for _, p := range s.products {
		value := p.Value()
		stats.TotalProducts++
		stats.TotalStock += p.Quantity
		stats.TotalValue += value
		if p.Quantity < DefaultLowStockThreshold {
			stats.LowStockItems++
		}

		cs := stats.Categories[p.Category]
		cs.Count++
		cs.TotalValue += value
		cs.TotalStock += p.Quantity
		stats.Categories[p.Category] = cs
	}
	return stats
}

// LowStockAlerts lists products at or below the given threshold. A
// non-positive threshold falls back to the default of 10.
func (s *Store) LowStockAlerts(threshold int) []domain.Product {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	return out
}

// Export serializes the full product list to indented JSON.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := s.products
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode products: %w", err)
	}
	return data, nil
}

// importRecord mirrors the externally supplied product shape. Price and
// Quantity are pointers so a missing field can be told apart from zero.
type importRecord struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	Image    string   `json:"image"`
}

// Import merges externally supplied product records. Records missing a
// required field or failing validation are skipped; the valid subset is
// committed with fresh ids. An unparseable payload or a batch with no
// valid record fails without changing the set.
func (s *Store) Import(ctx context.Context, raw []byte) (ImportReport, error) {
	var records []importRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return ImportReport{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	valid := make([]CreateInput, 0, len(records))
	for _, r := range records {
		if r.Name == "" || r.Category == "" || r.Price == nil || r.Quantity == nil {
			continue
		}
		input := CreateInput{
			Name:     r.Name,
			Category: r.Category,
			Price:    *r.Price,
			Quantity: *r.Quantity,
			Image:    r.Image,
		}
		if res := Validate(input); !res.Valid {
			continue
		}
		valid = append(valid, input)
	}
	if len(valid) == 0 {
		return ImportReport{}, ErrNoValidProducts
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.products
	now := time.Now()
	next := make([]domain.Product, len(prev), len(prev)+len(valid))
	copy(next, prev)
	for _, input := range valid {
		next = append(next, domain.Product{
			ID:        s.ids.NextID(),
			Name:      input.Name,
			Category:  input.Category,
			Price:     input.Price,
			Quantity:  input.Quantity,
			Image:     input.Image,
			CreatedAt: now,
		})
	}
	s.products = next
	if err := s.persist(ctx); err != nil {
		s.products = prev
		return ImportReport{}, err
	}

	return ImportReport{
		Imported: len(valid),
		Skipped:  len(records) - len(valid),
		Message:  fmt.Sprintf("successfully imported %d products", len(valid)),
	}, nil
}

// indexOf returns the position of the product matching id, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(id int64) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
