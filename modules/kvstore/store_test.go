package kvstore

import (
	"context"
	"errors"
	"testing"
)

// runStoreTests exercises the Store contract against any backend.
func runStoreTests(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := store.Set(ctx, "greeting", []byte("hello")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := store.Get(ctx, "greeting")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := store.Set(ctx, "greeting", []byte("goodbye")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := store.Get(ctx, "greeting")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "goodbye" {
			t.Errorf("expected %q, got %q", "goodbye", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.Delete(ctx, "greeting"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		_, err := store.Get(ctx, "greeting")
		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
		}
	})

	t.Run("delete missing key", func(t *testing.T) {
		if err := store.Delete(ctx, "never-set"); err != nil {
			t.Errorf("expected no error deleting absent key, got %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore())
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	got[0] = 'x'

	again, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(again) != "abc" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	defer store.Close()

	runStoreTests(t, store)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Config{Backend: "etcd"})
	if err == nil {
		t.Fatal("expected error for unknown backend, got nil")
	}
}
