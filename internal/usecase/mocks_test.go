package usecase

import (
	"context"
	"sync"

	"github.com/peekay08/storefront/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCartStore is an in-memory domain.CartStore with failure injection
type MockCartStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	getError error
	setError error
	setCalls int
}

func NewMockCartStore() *MockCartStore {
	return &MockCartStore{data: make(map[string][]byte)}
}

func (m *MockCartStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	value, ok := m.data[key]
	if !ok {
		return nil, domain.ErrCartKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *MockCartStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockCartStore) Close() error {
	return nil
}

func (m *MockCartStore) raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data[key])
}

// MockCatalogClient is a testify mock of domain.CatalogClient
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *MockCatalogClient) FetchProduct(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func product(id int, price float64) domain.Product {
	return domain.Product{ID: id, Title: "product", Price: price, Category: "test"}
}
