// Package kvstore provides the durable string-keyed document store that
// backs the storefront's state. Values are opaque byte slices; callers
// store JSON documents under a small set of fixed keys.
package kvstore

import (
	"context"
	"errors"
)

// Fixed keys under which the storefront persists its state.
const (
	KeyProducts        = "products"
	KeyCart            = "cart"
	KeyAdminSession    = "adminSession"
	KeyTheme           = "theme"
	KeyRememberedEmail = "rememberedEmail"
)

// ErrKeyNotFound is returned by Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a durable string-keyed document store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
