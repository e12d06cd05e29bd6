package domain

// Screen identifies which of the storefront screens is active
type Screen string

const (
	ScreenHome           Screen = "Home"
	ScreenCart           Screen = "Cart"
	ScreenProductDetails Screen = "ProductDetails"
)

// ViewState is the router state: the active screen and the product last opened in detail.
// SelectedProduct is left in place when leaving ProductDetails.
type ViewState struct {
	Screen          Screen   `json:"screen"`
	SelectedProduct *Product `json:"selectedProduct,omitempty"`
}
