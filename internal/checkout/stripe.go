// Package checkout creates hosted payment sessions for shopping carts.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"meatmarket/internal/model"
)

// ErrNotConfigured is returned when no Stripe key was configured.
var ErrNotConfigured = errors.New("checkout: stripe secret key not configured")

// Provider creates a checkout session for a cart and returns its id.
type Provider interface {
	CreateSession(ctx context.Context, cart []model.CartItem) (string, error)
}

// StripeProvider creates Stripe Checkout sessions.
type StripeProvider struct {
	api        *client.API
	successURL string
	cancelURL  string
}

var _ Provider = (*StripeProvider)(nil)

// NewStripeProvider builds a provider for the given secret key. An empty key
// yields a provider that fails every call with ErrNotConfigured.
func NewStripeProvider(secretKey, successURL, cancelURL string) *StripeProvider {
	p := &StripeProvider{successURL: successURL, cancelURL: cancelURL}
	if secretKey != "" {
		p.api = client.New(secretKey, nil)
	}
	return p
}

// CreateSession creates a card payment session in USD.
func (p *StripeProvider) CreateSession(ctx context.Context, cart []model.CartItem) (string, error) {
	if p.api == nil {
		return "", ErrNotConfigured
	}

	params := SessionParams(cart, p.successURL, p.cancelURL)
	params.Context = ctx

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return session.ID, nil
}

// SessionParams maps a cart to Stripe Checkout session parameters.
func SessionParams(cart []model.CartItem, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart))
	for _, item := range cart {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Product.Name),
		}
		if item.Product.ImageURL != "" {
			productData.Images = stripe.StringSlice([]string{item.Product.ImageURL})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.Product.PriceInCents),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}
}
