package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/peekay08/storefront/internal/domain"
	"github.com/peekay08/storefront/internal/usecase"
	log "github.com/sirupsen/logrus"
)

// Storefront is the application state the handlers read and dispatch actions to
type Storefront interface {
	Snapshot() usecase.State
	Product(ctx context.Context, id int) (domain.Product, error)
	Dispatch(ctx context.Context, action usecase.Action) (usecase.State, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	storefront Storefront
}

// NewHandler creates a new HTTP handler
func NewHandler(storefront Storefront) *Handler {
	return &Handler{storefront: storefront}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront",
		"version": "1.0.0",
	})
}

// GetCatalog renders the Home screen data
func (h *Handler) GetCatalog(c *gin.Context) {
	state := h.storefront.Snapshot()

	products := make([]ProductResponse, 0, len(state.Catalog))
	for _, p := range state.Catalog {
		products = append(products, newProductResponse(p, state.CountInCart(p.ID)))
	}

	c.JSON(http.StatusOK, CatalogResponse{
		Loaded:   state.CatalogLoaded,
		Products: products,
	})
}

// GetProduct renders the ProductDetails data for one product
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	product, err := h.storefront.Product(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	state := h.storefront.Snapshot()
	c.JSON(http.StatusOK, newProductResponse(product, state.CountInCart(product.ID)))
}

// SelectProduct opens a product in detail view
func (h *Handler) SelectProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}
	h.dispatchView(c, usecase.SelectProduct{ProductID: id})
}

// GetCart renders the Cart screen data
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, newCartResponse(h.storefront.Snapshot()))
}

// AddToCart appends a product to the cart
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	state, err := h.storefront.Dispatch(c.Request.Context(), usecase.AddToCart{ProductID: req.ProductID})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCartResponse(state))
}

// RemoveFromCart removes every entry of a product from the cart
func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	state, err := h.storefront.Dispatch(c.Request.Context(), usecase.RemoveFromCart{ProductID: id})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(state))
}

// GetView returns the active screen
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.storefront.Snapshot().View)
}

// ShowCart switches to the Cart screen
func (h *Handler) ShowCart(c *gin.Context) {
	h.dispatchView(c, usecase.ShowCart{})
}

// NavigateBack switches to the Home screen
func (h *Handler) NavigateBack(c *gin.Context) {
	h.dispatchView(c, usecase.NavigateBack{})
}

func (h *Handler) dispatchView(c *gin.Context, action usecase.Action) {
	state, err := h.storefront.Dispatch(c.Request.Context(), action)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.View)
}

// GetFilters returns the filter menu entries and the active one
func (h *Handler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, newFiltersResponse(h.storefront.Snapshot().Filter))
}

// ToggleFilterMenu opens or closes the filter menu
func (h *Handler) ToggleFilterMenu(c *gin.Context) {
	h.dispatchFilter(c, usecase.ToggleFilterMenu{})
}

// SelectFilter marks a filter label active
func (h *Handler) SelectFilter(c *gin.Context) {
	var req SelectFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label is required"})
		return
	}
	h.dispatchFilter(c, usecase.SelectFilter{Label: domain.FilterLabel(req.Label)})
}

func (h *Handler) dispatchFilter(c *gin.Context, action usecase.Action) {
	state, err := h.storefront.Dispatch(c.Request.Context(), action)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFiltersResponse(state.Filter))
}

// Checkout acknowledges the checkout button. No order is placed.
func (h *Handler) Checkout(c *gin.Context) {
	state, err := h.storefront.Dispatch(c.Request.Context(), usecase.Checkout{})
	if err != nil {
		writeError(c, err)
		return
	}

	cart := newCartResponse(state)
	c.JSON(http.StatusOK, CheckoutResponse{
		Status:    "accepted",
		ItemCount: cart.ItemCount,
		Total:     cart.Total,
	})
}

// productIDParam parses the :id path parameter, writing a 400 on failure
func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// writeError maps domain errors to HTTP status codes
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnknownFilter):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		log.WithField("path", c.FullPath()).Errorf("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
