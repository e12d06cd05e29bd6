package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/peekay08/storefront/internal/domain"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// State is an immutable snapshot of the storefront, enough to render any screen
type State struct {
	Catalog       []domain.Product   `json:"catalog"`
	CatalogLoaded bool               `json:"catalogLoaded"`
	Cart          []domain.Product   `json:"cart"`
	Total         decimal.Decimal    `json:"total"`
	View          domain.ViewState   `json:"view"`
	Filter        domain.FilterState `json:"filter"`
}

// CountInCart returns how many cart entries the product has (the badge on the add icon)
func (s State) CountInCart(productID int) int {
	n := 0
	for _, item := range s.Cart {
		if item.ID == productID {
			n++
		}
	}
	return n
}

// Storefront owns all application state: catalog, cart, router and filter menu.
// Every mutation goes through Dispatch and is applied under one lock, so each action
// is an atomic replacement of the state.
type Storefront struct {
	mu sync.Mutex

	catalogClient domain.CatalogClient
	cart          *CartManager
	router        *ViewRouter

	catalog       []domain.Product
	catalogLoaded bool
	filter        domain.FilterState

	startOnce sync.Once
	ready     chan struct{}
}

// NewStorefront creates a storefront on the Home screen with an empty catalog
func NewStorefront(catalogClient domain.CatalogClient, cart *CartManager) *Storefront {
	return &Storefront{
		catalogClient: catalogClient,
		cart:          cart,
		router:        NewViewRouter(),
		catalog:       []domain.Product{},
		filter:        domain.FilterState{Active: domain.DefaultFilter},
		ready:         make(chan struct{}),
	}
}

// Start seeds the cart from the store, then fetches the catalog in the background.
// The cart is loaded before Start returns, so no action can overwrite the persisted
// cart before it has been read. State reads see an empty catalog until the fetch
// completes. Calls after the first are no-ops.
func (s *Storefront) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.loadCart(ctx)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			s.loadCatalog(gctx)
			return nil
		})

		go func() {
			_ = g.Wait()
			close(s.ready)
		}()
	})
}

// Ready is closed once the catalog fetch has finished
func (s *Storefront) Ready() <-chan struct{} {
	return s.ready
}

// Wait blocks until startup has finished or ctx is done
func (s *Storefront) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Storefront) loadCatalog(ctx context.Context) {
	products, err := s.catalogClient.FetchCatalog(ctx)
	if err != nil {
		log.Errorf("[Storefront] Error fetching products, catalog stays empty: %v", err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = products
	s.catalogLoaded = true
}

func (s *Storefront) loadCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Load(ctx)
	log.Infof("[Storefront] Cart loaded with %d entries", len(items))
}

// Snapshot returns the current state
func (s *Storefront) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Storefront) snapshotLocked() State {
	catalog := make([]domain.Product, len(s.catalog))
	copy(catalog, s.catalog)

	return State{
		Catalog:       catalog,
		CatalogLoaded: s.catalogLoaded,
		Cart:          s.cart.Items(),
		Total:         s.cart.Total(),
		View:          s.router.State(),
		Filter:        s.filter,
	}
}

// Product looks a product up in the loaded catalog, falling back to the catalog API
// for ids not loaded yet.
func (s *Storefront) Product(ctx context.Context, id int) (domain.Product, error) {
	s.mu.Lock()
	product, ok := domain.FindProduct(s.catalog, id)
	s.mu.Unlock()
	if ok {
		return product, nil
	}

	fetched, err := s.catalogClient.FetchProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("%w: product %d: %v", domain.ErrProductNotFound, id, err)
	}
	return *fetched, nil
}

// Dispatch applies action and returns the resulting state.
// On error the state is unchanged.
func (s *Storefront) Dispatch(ctx context.Context, action Action) (State, error) {
	// Resolve products outside the lock: the API fallback may block
	var product domain.Product
	switch a := action.(type) {
	case AddToCart:
		p, err := s.resolveForCart(ctx, a.ProductID)
		if err != nil {
			return s.Snapshot(), err
		}
		product = p
	case SelectProduct:
		p, err := s.Product(ctx, a.ProductID)
		if err != nil {
			return s.Snapshot(), err
		}
		product = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(ctx, action, product); err != nil {
		return s.snapshotLocked(), err
	}

	log.Debugf("[Storefront] Applied %s", action.actionName())
	return s.snapshotLocked(), nil
}

// resolveForCart finds the product to add: catalog first, then the product open in
// detail view, then the catalog API.
func (s *Storefront) resolveForCart(ctx context.Context, id int) (domain.Product, error) {
	s.mu.Lock()
	product, ok := domain.FindProduct(s.catalog, id)
	if !ok {
		if selected := s.router.state.SelectedProduct; selected != nil && selected.ID == id {
			product, ok = *selected, true
		}
	}
	s.mu.Unlock()

	if ok {
		return product, nil
	}
	return s.Product(ctx, id)
}

func (s *Storefront) apply(ctx context.Context, action Action, product domain.Product) error {
	switch a := action.(type) {
	case AddToCart:
		s.cart.Add(ctx, product)
	case RemoveFromCart:
		s.cart.Remove(ctx, a.ProductID)
	case ShowCart:
		s.router.ShowCart()
	case SelectProduct:
		return s.router.SelectProduct(product)
	case NavigateBack:
		s.router.Back()
	case ToggleFilterMenu:
		s.filter.MenuOpen = !s.filter.MenuOpen
	case SelectFilter:
		label, err := domain.ParseFilterLabel(string(a.Label))
		if err != nil {
			return err
		}
		s.filter = domain.FilterState{Active: label, MenuOpen: false}
	case Checkout:
		log.Infof("[Storefront] Checkout pressed with %d entries, est. total %s",
			s.cart.Len(), s.cart.Total().StringFixed(2))
	case nil:
		return fmt.Errorf("%w: nil", domain.ErrUnknownAction)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnknownAction, action)
	}
	return nil
}
