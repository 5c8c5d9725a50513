package model

// CartProduct is the product snapshot the client sends with a cart entry.
type CartProduct struct {
	Name         string `json:"name" validate:"required"`
	ImageURL     string `json:"imageUrl"`
	PriceInCents int64  `json:"priceInCents" validate:"min=0"`
}

// CartItem is one entry of a shopping cart.
type CartItem struct {
	Product  CartProduct `json:"product" validate:"required"`
	Quantity int64       `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest is the body of a checkout session request.
type CheckoutRequest struct {
	ShoppingCart []CartItem `json:"shoppingCart" validate:"required,min=1,dive"`
}
