package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamStore persists entries in a NATS JetStream key-value bucket.
type JetStreamStore struct {
	conn   *nats.Conn
	bucket jetstream.KeyValue
}

// NewJetStreamStore connects to NATS at url and opens (or creates) the
// named KV bucket.
func NewJetStreamStore(ctx context.Context, url, bucket string) (*JetStreamStore, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := js.KeyValue(ctx, bucket)
	if err != nil {
		kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:      bucket,
			Description: "storefront state",
		})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create bucket %q: %w", bucket, err)
		}
	}

	return &JetStreamStore{conn: conn, bucket: kv}, nil
}

// Get returns the value stored under key.
func (s *JetStreamStore) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := s.bucket.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return entry.Value(), nil
}

// Set stores value under key, replacing any previous value.
func (s *JetStreamStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.bucket.Put(ctx, key, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting an absent key is a no-op.
func (s *JetStreamStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the NATS connection.
func (s *JetStreamStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	return nil
}
