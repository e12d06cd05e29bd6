package usecase

import (
	"testing"

	"github.com/peekay08/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewRouter(t *testing.T) {
	r := NewViewRouter()

	assert.Equal(t, domain.ScreenHome, r.Screen())
	assert.Nil(t, r.State().SelectedProduct)
}

func TestViewRouter_Transitions(t *testing.T) {
	p := product(1, 10)

	tests := []struct {
		name       string
		steps      func(r *ViewRouter) error
		wantScreen domain.Screen
		wantErr    error
	}{
		{
			name:       "home to cart",
			steps:      func(r *ViewRouter) error { r.ShowCart(); return nil },
			wantScreen: domain.ScreenCart,
		},
		{
			name:       "home to product details",
			steps:      func(r *ViewRouter) error { return r.SelectProduct(p) },
			wantScreen: domain.ScreenProductDetails,
		},
		{
			name: "cart back to home",
			steps: func(r *ViewRouter) error {
				r.ShowCart()
				r.Back()
				return nil
			},
			wantScreen: domain.ScreenHome,
		},
		{
			name: "product details back to home",
			steps: func(r *ViewRouter) error {
				if err := r.SelectProduct(p); err != nil {
					return err
				}
				r.Back()
				return nil
			},
			wantScreen: domain.ScreenHome,
		},
		{
			name: "cart icon from product details",
			steps: func(r *ViewRouter) error {
				if err := r.SelectProduct(p); err != nil {
					return err
				}
				r.ShowCart()
				return nil
			},
			wantScreen: domain.ScreenCart,
		},
		{
			name:       "back on home is a no-op",
			steps:      func(r *ViewRouter) error { r.Back(); return nil },
			wantScreen: domain.ScreenHome,
		},
		{
			name: "select product from cart is rejected",
			steps: func(r *ViewRouter) error {
				r.ShowCart()
				return r.SelectProduct(p)
			},
			wantScreen: domain.ScreenCart,
			wantErr:    domain.ErrInvalidTransition,
		},
		{
			name: "select product from product details is rejected",
			steps: func(r *ViewRouter) error {
				if err := r.SelectProduct(p); err != nil {
					return err
				}
				return r.SelectProduct(product(2, 20))
			},
			wantScreen: domain.ScreenProductDetails,
			wantErr:    domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewViewRouter()
			err := tt.steps(r)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantScreen, r.Screen())
		})
	}
}

func TestViewRouter_SelectedProductIsKeptAfterLeaving(t *testing.T) {
	r := NewViewRouter()
	require.NoError(t, r.SelectProduct(product(7, 70)))

	r.Back()
	r.ShowCart()

	state := r.State()
	require.NotNil(t, state.SelectedProduct)
	assert.Equal(t, 7, state.SelectedProduct.ID)

	r.Back()
	require.NoError(t, r.SelectProduct(product(8, 80)))
	assert.Equal(t, 8, r.State().SelectedProduct.ID)
}

func TestViewRouter_StateIsACopy(t *testing.T) {
	r := NewViewRouter()
	require.NoError(t, r.SelectProduct(product(1, 10)))

	state := r.State()
	state.SelectedProduct.Price = 999
	state.Screen = domain.ScreenCart

	assert.Equal(t, 10.0, r.State().SelectedProduct.Price)
	assert.Equal(t, domain.ScreenProductDetails, r.Screen())
}
