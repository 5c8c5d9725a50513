package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	svc     service.ProductService
	reviews service.ReviewService
	users   service.UserService
}

// NewProductHandler creates a product handler.
func NewProductHandler(svc service.ProductService, reviews service.ReviewService, users service.UserService) *ProductHandler {
	return &ProductHandler{svc: svc, reviews: reviews, users: users}
}

// ProductCreateRequest represents a new product.
type ProductCreateRequest struct {
	SellerID      uint   `json:"sellerId" validate:"required"`
	Name          string `json:"name" validate:"required,min=1,max=255"`
	Description   string `json:"description"`
	PriceInCents  int64  `json:"priceInCents" validate:"min=0"`
	MeatType      string `json:"meatType" validate:"max=100"`
	CutType       string `json:"cutType" validate:"max=100"`
	WeightInGrams int    `json:"weightInGrams" validate:"min=0"`
	ImageURL      string `json:"imageUrl" validate:"max=2048"`
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductCreateRequest true "Product data"
// @Success 201 {object} map[string]model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/create [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := requireSeller(c, h.users, req.SellerID); err != nil {
		return err
	}

	product, err := h.svc.Create(c.Request().Context(), &model.Product{
		SellerID:      req.SellerID,
		Name:          req.Name,
		Description:   req.Description,
		PriceInCents:  req.PriceInCents,
		MeatType:      req.MeatType,
		CutType:       req.CutType,
		WeightInGrams: req.WeightInGrams,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"product": product})
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param sellerId query int false "Seller ID"
// @Param name query string false "Name contains (case-insensitive)"
// @Param meatType query string false "Meat type"
// @Param cutType query string false "Cut type"
// @Param minPrice query int false "Minimum price in cents"
// @Param maxPrice query int false "Maximum price in cents"
// @Success 200 {object} map[string][]model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var filter model.ProductFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return apperr.BadRequest("invalid query parameters")
	}
	products, err := h.svc.FindAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}

// GetProduct godoc
// @Summary Get a product with its reviews
// @Tags products
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{productId} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	product, err := h.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	reviews, err := h.reviews.FindAll(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"product": product, "reviews": reviews})
}

// GetProductReview godoc
// @Summary Get a product and one of its reviews
// @Tags products
// @Produce json
// @Param productId path int true "Product ID"
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{productId}/reviews/{reviewId} [get]
func (h *ProductHandler) GetProductReview(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	product, err := h.svc.Get(ctx, productID)
	if err != nil {
		return err
	}
	review, err := h.reviews.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.ProductID != productID {
		return apperr.NotFound("No review with ID: %d", reviewID)
	}
	return c.JSON(http.StatusOK, echo.Map{"product": product, "review": review})
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Param request body model.ProductUpdate true "Fields to change"
// @Success 201 {object} map[string]model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{productId} [patch]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	if err := h.requireOwner(c, id); err != nil {
		return err
	}
	var req model.ProductUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"product": product})
}

// RemoveProduct godoc
// @Summary Remove a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{productId}/remove [patch]
func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	if err := h.requireOwner(c, id); err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"productId": id, "deleted": true})
}

// requireOwner fails unless the token belongs to the seller of product id.
func (h *ProductHandler) requireOwner(c echo.Context, id uint) error {
	product, err := h.svc.Get(c.Request().Context(), id)
	if apperr.IsNotFound(err) {
		return apperr.NotFound("No product found with ID: %d", id)
	}
	if err != nil {
		return err
	}
	return requireSeller(c, h.users, product.SellerID)
}
