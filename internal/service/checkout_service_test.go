package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

func TestCheckoutService_CreateSession(t *testing.T) {
	cart := []model.CartItem{{Product: model.CartProduct{Name: "Ribeye", PriceInCents: 1000}, Quantity: 2}}

	t.Run("empty cart", func(t *testing.T) {
		provider := new(MockCheckoutProvider)
		svc := NewCheckoutService(provider)

		_, err := svc.CreateSession(context.Background(), nil)

		assert.True(t, apperr.IsBadRequest(err))
		provider.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	})

	t.Run("returns session id", func(t *testing.T) {
		provider := new(MockCheckoutProvider)
		provider.On("CreateSession", mock.Anything, cart).Return("cs_test_123", nil)
		svc := NewCheckoutService(provider)

		id, err := svc.CreateSession(context.Background(), cart)

		require.NoError(t, err)
		assert.Equal(t, "cs_test_123", id)
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := new(MockCheckoutProvider)
		provider.On("CreateSession", mock.Anything, cart).Return("", errors.New("stripe down"))
		svc := NewCheckoutService(provider)

		_, err := svc.CreateSession(context.Background(), cart)

		require.Error(t, err)
		assert.Equal(t, 0, int(apperr.KindOf(err)))
	})
}
