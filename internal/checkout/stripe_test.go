package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meatmarket/internal/model"
)

func TestSessionParams(t *testing.T) {
	cart := []model.CartItem{
		{Product: model.CartProduct{Name: "Ribeye", ImageURL: "https://img.test/ribeye.png", PriceInCents: 1000}, Quantity: 2},
		{Product: model.CartProduct{Name: "Brisket", PriceInCents: 2000}, Quantity: 3},
	}

	params := SessionParams(cart, "http://localhost:3000/success", "http://localhost:3000/checkout")

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "http://localhost:3000/success", *params.SuccessURL)
	assert.Equal(t, "http://localhost:3000/checkout", *params.CancelURL)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])

	require.Len(t, params.LineItems, 2)
	first := params.LineItems[0]
	assert.Equal(t, "usd", *first.PriceData.Currency)
	assert.Equal(t, "Ribeye", *first.PriceData.ProductData.Name)
	require.Len(t, first.PriceData.ProductData.Images, 1)
	assert.Equal(t, "https://img.test/ribeye.png", *first.PriceData.ProductData.Images[0])
	assert.Equal(t, int64(1000), *first.PriceData.UnitAmount)
	assert.Equal(t, int64(2), *first.Quantity)

	second := params.LineItems[1]
	assert.Empty(t, second.PriceData.ProductData.Images)
	assert.Equal(t, int64(3), *second.Quantity)
}

func TestStripeProvider_NotConfigured(t *testing.T) {
	p := NewStripeProvider("", "s", "c")

	_, err := p.CreateSession(context.Background(), []model.CartItem{{Quantity: 1}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
