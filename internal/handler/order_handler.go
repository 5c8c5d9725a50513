package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc   service.OrderService
	users service.UserService
}

// NewOrderHandler creates an order handler.
func NewOrderHandler(svc service.OrderService, users service.UserService) *OrderHandler {
	return &OrderHandler{svc: svc, users: users}
}

// OrderCreateRequest represents a new order. UserID defaults to the token's
// user and may not name anyone else.
type OrderCreateRequest struct {
	UserID           uint                `json:"userId"`
	PricePaidInCents int64               `json:"pricePaidInCents" validate:"min=0"`
	Products         []model.NewLineItem `json:"products" validate:"required,min=1,dive"`
}

// CreateOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderCreateRequest true "Order data"
// @Success 201 {object} map[string]model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/create [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req OrderCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}
	if req.UserID == 0 {
		req.UserID = user.UserID
	}
	if req.UserID != user.UserID {
		return apperr.Unauthorized("Unauthorized")
	}

	order, err := h.svc.Create(c.Request().Context(), req.UserID, req.Products, req.PricePaidInCents)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"order": order})
}

// ListOrders godoc
// @Summary List the token user's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}
	orders, err := h.svc.FindByUser(c.Request().Context(), user.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// GetOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 200 {object} map[string]model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{orderId} [get]
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	order, err := h.owned(c, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"order": order})
}

// UpdateOrder godoc
// @Summary Update an order and its line items
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Param request body model.OrderUpdate true "Fields to change"
// @Success 201 {object} map[string]model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{orderId} [patch]
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	var req model.OrderUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	current, err := h.owned(c, id)
	if apperr.IsNotFound(err) {
		return apperr.NotFound("No such order with ID: %d", id)
	}
	if err != nil {
		return err
	}
	if req.UserID != nil && *req.UserID != current.UserID {
		return apperr.Unauthorized("Unauthorized")
	}

	order, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"order": order})
}

// RemoveOrder godoc
// @Summary Remove an order and its line items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path int true "Order ID"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{orderId}/remove [patch]
func (h *OrderHandler) RemoveOrder(c echo.Context) error {
	id, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	if _, err := h.owned(c, id); err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"orderId": id, "deleted": true})
}

// owned loads order id and fails unless it belongs to the token's user.
func (h *OrderHandler) owned(c echo.Context, id uint) (*model.Order, error) {
	order, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if _, err := requireUser(c, h.users, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}
