package cartstore

import (
	"context"
	"fmt"

	"github.com/peekay08/storefront/internal/domain"
)

// Store types accepted by Open
const (
	TypeLevelDB = "leveldb"
	TypeRedis   = "redis"
	TypeMemory  = "memory"
)

// Options selects and configures a cart store backend
type Options struct {
	Type     string
	Path     string
	RedisURL string
}

// Open builds the cart store described by opts
func Open(ctx context.Context, opts Options) (domain.CartStore, error) {
	switch opts.Type {
	case TypeLevelDB:
		store, err := NewLevelDBStore(opts.Path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case TypeRedis:
		store, err := NewRedisStore(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case TypeMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cart store type: %q", opts.Type)
	}
}
