package domain

import "context"

// CartStore is a durable key-value store holding serialized carts.
// Get returns ErrCartKeyNotFound when nothing is stored under key.
type CartStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// CatalogClient defines the interface for reading the remote product catalog
type CatalogClient interface {
	FetchCatalog(ctx context.Context) ([]Product, error)
	FetchProduct(ctx context.Context, id int) (*Product, error)
}
