package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peekay08/storefront/internal/domain"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// DefaultCartKey is the store key the cart is persisted under
const DefaultCartKey = "cart"

// CartManager holds the in-memory cart and writes every change through to a CartStore.
//
// The cart is an ordered multiset: each Add appends one entry, even for a product
// already in the cart. Every mutation replaces the list rather than editing it in place,
// so slices returned to callers are never modified afterwards.
//
// CartManager is not safe for concurrent use; Storefront serialises access to it.
type CartManager struct {
	store domain.CartStore
	key   string
	items []domain.Product
}

// NewCartManager creates an empty cart backed by store under key
func NewCartManager(store domain.CartStore, key string) *CartManager {
	if key == "" {
		key = DefaultCartKey
	}

	return &CartManager{
		store: store,
		key:   key,
		items: []domain.Product{},
	}
}

// Load replaces the in-memory cart with the persisted one.
// A missing key, a store failure or an undecodable value all yield an empty cart.
func (m *CartManager) Load(ctx context.Context) []domain.Product {
	m.items = m.read(ctx)
	return m.Items()
}

func (m *CartManager) read(ctx context.Context) []domain.Product {
	data, err := m.store.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, domain.ErrCartKeyNotFound) {
			log.Warnf("[Cart] Failed to read persisted cart, starting empty: %v", err)
		}
		return []domain.Product{}
	}

	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warnf("[Cart] Persisted cart is not decodable, starting empty: %v", err)
		return []domain.Product{}
	}
	if items == nil {
		return []domain.Product{}
	}

	log.Debugf("[Cart] Loaded %d entries from key %q", len(items), m.key)
	return items
}

// Add appends product to the end of the cart and writes the new cart through.
// The write has completed (or failed and been logged) when Add returns.
func (m *CartManager) Add(ctx context.Context, product domain.Product) []domain.Product {
	next := make([]domain.Product, len(m.items), len(m.items)+1)
	copy(next, m.items)
	next = append(next, product)

	m.replace(ctx, next)
	return m.Items()
}

// Remove drops every entry whose id equals productID and writes the new cart through.
func (m *CartManager) Remove(ctx context.Context, productID int) []domain.Product {
	next := make([]domain.Product, 0, len(m.items))
	for _, item := range m.items {
		if item.ID != productID {
			next = append(next, item)
		}
	}

	m.replace(ctx, next)
	return m.Items()
}

// replace swaps in the new list first, then persists it. A failed write keeps the
// in-memory cart.
func (m *CartManager) replace(ctx context.Context, next []domain.Product) {
	m.items = next

	if err := m.persist(ctx, next); err != nil {
		log.Errorf("[Cart] Write-through failed, in-memory cart kept: %v", err)
	}
}

func (m *CartManager) persist(ctx context.Context, items []domain.Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := m.store.Set(ctx, m.key, data); err != nil {
		return err
	}
	return nil
}

// Total returns the sum of the prices of all entries, duplicates included
func (m *CartManager) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total
}

// Count returns how many entries in the cart have the given product id
func (m *CartManager) Count(productID int) int {
	n := 0
	for _, item := range m.items {
		if item.ID == productID {
			n++
		}
	}
	return n
}

// Len returns the number of entries in the cart
func (m *CartManager) Len() int {
	return len(m.items)
}

// Items returns a copy of the cart entries in insertion order
func (m *CartManager) Items() []domain.Product {
	out := make([]domain.Product, len(m.items))
	copy(out, m.items)
	return out
}
