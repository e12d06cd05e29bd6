package usecase

import (
	"fmt"

	"github.com/peekay08/storefront/internal/domain"
)

// ViewRouter tracks the active screen and the product opened in detail view
type ViewRouter struct {
	state domain.ViewState
}

// NewViewRouter creates a router on the Home screen
func NewViewRouter() *ViewRouter {
	return &ViewRouter{
		state: domain.ViewState{Screen: domain.ScreenHome},
	}
}

// State returns a copy of the current view state
func (r *ViewRouter) State() domain.ViewState {
	state := r.state
	if state.SelectedProduct != nil {
		selected := *state.SelectedProduct
		state.SelectedProduct = &selected
	}
	return state
}

// Screen returns the active screen
func (r *ViewRouter) Screen() domain.Screen {
	return r.state.Screen
}

// ShowCart opens the cart. The cart icon lives in the header, so this is accepted
// from every screen.
func (r *ViewRouter) ShowCart() {
	r.state.Screen = domain.ScreenCart
}

// SelectProduct opens product in detail view. Products are only listed on Home.
func (r *ViewRouter) SelectProduct(product domain.Product) error {
	if r.state.Screen != domain.ScreenHome {
		return fmt.Errorf("%w: cannot select a product from %s", domain.ErrInvalidTransition, r.state.Screen)
	}

	r.state.SelectedProduct = &product
	r.state.Screen = domain.ScreenProductDetails
	return nil
}

// Back returns to Home. SelectedProduct is left as is.
func (r *ViewRouter) Back() {
	r.state.Screen = domain.ScreenHome
}
