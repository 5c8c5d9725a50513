package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest represents a login request.
type TokenRequest struct {
	Username string `json:"username" validate:"required,min=1,max=30"`
	Password string `json:"password" validate:"required,min=5,max=20"`
}

// RegisterRequest represents a buyer registration request.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=1,max=30"`
	Password        string `json:"password" validate:"required,min=5,max=20"`
	FirstName       string `json:"firstName" validate:"required,min=1,max=255"`
	LastName        string `json:"lastName" validate:"required,min=1,max=255"`
	Email           string `json:"email" validate:"required,email,max=255"`
	ShippingAddress string `json:"shippingAddress" validate:"max=255"`
}

func (r RegisterRequest) user() *model.User {
	return &model.User{
		Username:        r.Username,
		Password:        r.Password,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		ShippingAddress: r.ShippingAddress,
	}
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Token godoc
// @Summary Log in and get a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Token(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Register godoc
// @Summary Register a buyer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Register(c.Request().Context(), req.user())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
