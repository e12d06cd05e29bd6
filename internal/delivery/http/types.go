package http

import (
	"github.com/peekay08/storefront/internal/domain"
	"github.com/peekay08/storefront/internal/usecase"
)

// AddToCartRequest is the body of POST /api/v1/cart/items
type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

// SelectFilterRequest is the body of PUT /api/v1/filters/active
type SelectFilterRequest struct {
	Label string `json:"label" binding:"required"`
}

// ProductResponse is a product as rendered in lists and detail view
type ProductResponse struct {
	domain.Product
	Summary   string `json:"summary"`
	CartCount int    `json:"cartCount"`
}

func newProductResponse(p domain.Product, cartCount int) ProductResponse {
	return ProductResponse{
		Product:   p,
		Summary:   p.Summary(),
		CartCount: cartCount,
	}
}

// CatalogResponse is the Home screen payload
type CatalogResponse struct {
	Loaded   bool              `json:"loaded"`
	Products []ProductResponse `json:"products"`
}

// CartResponse is the Cart screen payload. Total is formatted with two decimals.
type CartResponse struct {
	Items     []ProductResponse `json:"items"`
	ItemCount int               `json:"itemCount"`
	Total     string            `json:"total"`
}

func newCartResponse(state usecase.State) CartResponse {
	items := make([]ProductResponse, 0, len(state.Cart))
	for _, p := range state.Cart {
		items = append(items, newProductResponse(p, state.CountInCart(p.ID)))
	}

	return CartResponse{
		Items:     items,
		ItemCount: len(state.Cart),
		Total:     state.Total.StringFixed(2),
	}
}

// FiltersResponse is the filter menu payload
type FiltersResponse struct {
	Labels   []domain.FilterLabel `json:"labels"`
	Active   domain.FilterLabel   `json:"active"`
	MenuOpen bool                 `json:"menuOpen"`
}

func newFiltersResponse(filter domain.FilterState) FiltersResponse {
	return FiltersResponse{
		Labels:   domain.FilterLabels,
		Active:   filter.Active,
		MenuOpen: filter.MenuOpen,
	}
}

// CheckoutResponse acknowledges the checkout button
type CheckoutResponse struct {
	Status    string `json:"status"`
	ItemCount int    `json:"itemCount"`
	Total     string `json:"total"`
}
