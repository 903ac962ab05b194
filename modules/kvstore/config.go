package kvstore

import (
	"context"
	"fmt"
	"os"

	"github.com/nats-io/nats.go"
)

// Available backend names for Config.Backend.
const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendRedis     = "redis"
	BackendJetStream = "jetstream"
)

// Config selects and configures a Store backend.
type Config struct {
	Backend     string
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
	NATSURL     string
	NATSBucket  string
}

// LoadConfig reads the backend configuration from the environment,
// falling back to local defaults.
func LoadConfig() Config {
	return Config{
		Backend:     getenv("STORE_BACKEND", BackendSQLite),
		SQLitePath:  getenv("STORE_SQLITE_PATH", "storefront.db"),
		RedisAddr:   getenv("STORE_REDIS_ADDR", "localhost:6379"),
		RedisPrefix: getenv("STORE_REDIS_PREFIX", "storefront:"),
		NATSURL:     getenv("STORE_NATS_URL", nats.DefaultURL),
		NATSBucket:  getenv("STORE_NATS_BUCKET", "storefront"),
	}
}

// Open constructs the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	case BackendJetStream:
		return NewJetStreamStore(ctx, cfg.NATSURL, cfg.NATSBucket)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
