package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// SellerHandler handles seller endpoints.
type SellerHandler struct {
	svc         service.SellerService
	users       service.UserService
	authService service.AuthService
}

// NewSellerHandler creates a seller handler.
func NewSellerHandler(svc service.SellerService, users service.UserService, authService service.AuthService) *SellerHandler {
	return &SellerHandler{svc: svc, users: users, authService: authService}
}

// SellerRegisterRequest represents a seller registration request.
type SellerRegisterRequest struct {
	RegisterRequest
	CompanyName string `json:"companyName" validate:"required,min=1,max=255"`
	ContactInfo string `json:"contactInfo" validate:"max=255"`
}

// RegisterSeller godoc
// @Summary Register a seller
// @Tags sellers
// @Accept json
// @Produce json
// @Param request body SellerRegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /sellers/register [post]
func (h *SellerHandler) RegisterSeller(c echo.Context) error {
	var req SellerRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	seller := &model.Seller{CompanyName: req.CompanyName, ContactInfo: req.ContactInfo}
	token, err := h.authService.RegisterSeller(c.Request().Context(), req.user(), seller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// ListSellers godoc
// @Summary List sellers
// @Tags sellers
// @Produce json
// @Success 200 {object} map[string][]model.SellerProfile
// @Router /sellers [get]
func (h *SellerHandler) ListSellers(c echo.Context) error {
	sellers, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"sellers": sellers})
}

// GetSeller godoc
// @Summary Get a seller
// @Tags sellers
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} map[string]model.SellerProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{sellerId} [get]
func (h *SellerHandler) GetSeller(c echo.Context) error {
	id, err := pathID(c, "sellerId")
	if err != nil {
		return err
	}
	seller, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"seller": seller})
}

// ListSellerProducts godoc
// @Summary List a seller's products
// @Tags sellers
// @Produce json
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} map[string][]model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{sellerId}/products [get]
func (h *SellerHandler) ListSellerProducts(c echo.Context) error {
	id, err := pathID(c, "sellerId")
	if err != nil {
		return err
	}
	products, err := h.svc.Products(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// UpdateSeller godoc
// @Summary Update a seller
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sellerId path int true "Seller ID"
// @Param request body model.SellerUpdate true "Fields to change"
// @Success 200 {object} map[string]model.SellerProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{sellerId} [patch]
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	id, err := pathID(c, "sellerId")
	if err != nil {
		return err
	}
	if err := requireSeller(c, h.users, id); err != nil {
		return err
	}
	var req model.SellerUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	seller, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"seller": seller})
}

// RemoveSeller godoc
// @Summary Remove a seller and its user
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param sellerId path int true "Seller ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{sellerId}/remove [patch]
func (h *SellerHandler) RemoveSeller(c echo.Context) error {
	id, err := pathID(c, "sellerId")
	if err != nil {
		return err
	}
	if err := requireSeller(c, h.users, id); err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"sellerId": id, "deleted": true})
}
