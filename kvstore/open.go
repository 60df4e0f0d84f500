package kvstore

import (
	"context"
	"fmt"
)

// Options selects and parameterizes a store backend.
type Options struct {
	// Backend is one of "memory", "file", "redis", "postgres".
	Backend string
	// Dir is the root directory for the file backend.
	Dir string
	// RedisAddr is the host:port for the redis backend.
	RedisAddr string
	// RedisNamespace prefixes every key in the redis backend.
	RedisNamespace string
	// DatabaseURL is the connection string for the postgres backend.
	DatabaseURL string
}

// Open builds the store named by opts.Backend. An empty backend means memory.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(opts.Dir)
	case "redis":
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("redis backend requires an address")
		}
		return NewRedisStore(opts.RedisAddr, opts.RedisNamespace), nil
	case "postgres":
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires a database URL")
		}
		return NewPostgresStore(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
