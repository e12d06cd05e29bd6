package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogUnavailable is returned when the catalog API request fails
	ErrCatalogUnavailable = errors.New("catalog API request failed")

	// ErrCartKeyNotFound is returned when nothing has been persisted under the cart key yet
	ErrCartKeyNotFound = errors.New("cart key not found")

	// ErrCartStoreUnavailable is returned when the cart store cannot be read or written
	ErrCartStoreUnavailable = errors.New("cart store unavailable")

	// ErrInvalidTransition is returned when a navigation action is not allowed on the current screen
	ErrInvalidTransition = errors.New("invalid view transition")

	// ErrUnknownFilter is returned when a filter label is outside the fixed filter set
	ErrUnknownFilter = errors.New("unknown filter label")

	// ErrUnknownAction is returned when Dispatch receives an action it cannot handle
	ErrUnknownAction = errors.New("unknown action")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
