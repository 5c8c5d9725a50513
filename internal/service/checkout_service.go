package service

import (
	"context"
	"fmt"

	"meatmarket/internal/checkout"
	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

// CheckoutService starts hosted payments for shopping carts.
type CheckoutService interface {
	CreateSession(ctx context.Context, cart []model.CartItem) (string, error)
}

type checkoutService struct {
	provider checkout.Provider
}

// NewCheckoutService builds a checkout service on provider.
func NewCheckoutService(provider checkout.Provider) CheckoutService {
	return &checkoutService{provider: provider}
}

func (s *checkoutService) CreateSession(ctx context.Context, cart []model.CartItem) (string, error) {
	if len(cart) == 0 {
		return "", apperr.BadRequest("Shopping cart is empty")
	}
	for _, item := range cart {
		if item.Quantity < 1 {
			return "", apperr.BadRequest("Invalid quantity for %s", item.Product.Name)
		}
	}
	id, err := s.provider.CreateSession(ctx, cart)
	if err != nil {
		return "", fmt.Errorf("checkout: %w", err)
	}
	return id, nil
}
