package usecase

import "github.com/peekay08/storefront/internal/domain"

// Action is a user intent applied to the storefront by Dispatch.
// Each tap target of the UI maps to exactly one action.
type Action interface {
	actionName() string
}

// AddToCart appends the product to the cart (add icon on Home, "add to basket" on detail)
type AddToCart struct {
	ProductID int
}

// RemoveFromCart removes every cart entry of the product (remove icon on Cart)
type RemoveFromCart struct {
	ProductID int
}

// ShowCart opens the Cart screen (cart icon, "view cart" button)
type ShowCart struct{}

// SelectProduct opens the product in detail view (product tap on Home)
type SelectProduct struct {
	ProductID int
}

// NavigateBack returns to Home (navigate icon)
type NavigateBack struct{}

// ToggleFilterMenu opens or closes the header filter menu (menu icon)
type ToggleFilterMenu struct{}

// SelectFilter marks a filter label active and closes the menu
type SelectFilter struct {
	Label domain.FilterLabel
}

// Checkout is the checkout button. No order is submitted.
type Checkout struct{}

func (AddToCart) actionName() string        { return "add_to_cart" }
func (RemoveFromCart) actionName() string   { return "remove_from_cart" }
func (ShowCart) actionName() string         { return "show_cart" }
func (SelectProduct) actionName() string    { return "select_product" }
func (NavigateBack) actionName() string     { return "navigate_back" }
func (ToggleFilterMenu) actionName() string { return "toggle_filter_menu" }
func (SelectFilter) actionName() string     { return "select_filter" }
func (Checkout) actionName() string         { return "checkout" }
