package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	checkoutService service.CheckoutService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkoutService: checkoutService}
}

// CreateCheckoutSession godoc
// @Summary Start a hosted checkout for a cart
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CheckoutRequest true "Shopping cart"
// @Success 200 {string} string "Checkout session id"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment/create-checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	var req model.CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sessionID, err := h.checkoutService.CreateSession(c.Request().Context(), req.ShoppingCart)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionID)
}
