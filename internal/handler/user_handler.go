package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// requireSelf fails unless the token belongs to the :username in the path.
func requireSelf(c echo.Context) (string, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return "", err
	}
	username := c.Param("username")
	if claims.Username != username {
		return "", apperr.Unauthorized("Unauthorized")
	}
	return username, nil
}

// ListUsers godoc
// @Summary List the users visible to the token, which is only its own
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	user, err := currentUser(c, h.svc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": []model.User{*user}})
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} map[string]model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{username} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	username, err := requireSelf(c)
	if err != nil {
		return err
	}
	user, err := h.svc.Get(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// UpdateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param request body model.UserUpdate true "Fields to change"
// @Success 200 {object} map[string]model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{username} [patch]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	username, err := requireSelf(c)
	if err != nil {
		return err
	}
	var req model.UserUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Update(c.Request().Context(), username, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// DeleteUser godoc
// @Summary Remove a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{username} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	username, err := requireSelf(c)
	if err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": username})
}

// ListUserOrders godoc
// @Summary List a user's orders
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} map[string][]model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{username}/orders [get]
func (h *UserHandler) ListUserOrders(c echo.Context) error {
	username, err := requireSelf(c)
	if err != nil {
		return err
	}
	orders, err := h.svc.Orders(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}
