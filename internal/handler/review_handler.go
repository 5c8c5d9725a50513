package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	svc   service.ReviewService
	users service.UserService
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(svc service.ReviewService, users service.UserService) *ReviewHandler {
	return &ReviewHandler{svc: svc, users: users}
}

// ReviewCreateRequest represents a new review. UserID must be the token's
// user.
type ReviewCreateRequest struct {
	UserID    uint            `json:"userId" validate:"required"`
	ProductID uint            `json:"productId" validate:"required"`
	Rating    decimal.Decimal `json:"rating" swaggertype:"number"`
	Comment   string          `json:"comment"`
}

// CreateReview godoc
// @Summary Review a product
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReviewCreateRequest true "Review data"
// @Success 201 {object} map[string]model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/create [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req ReviewCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := requireUser(c, h.users, req.UserID); err != nil {
		return err
	}

	review, err := h.svc.Create(c.Request().Context(), &model.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"review": review})
}

// ListReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param productId query int false "Only reviews of this product"
// @Success 200 {object} map[string][]model.Review
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	var productID uint
	if err := echo.QueryParamsBinder(c).Uint("productId", &productID).BindError(); err != nil {
		return apperr.BadRequest("Invalid productId: %s", c.QueryParam("productId"))
	}
	reviews, err := h.svc.FindAll(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": reviews})
}

// GetReview godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param reviewId path int true "Review ID"
// @Success 200 {object} map[string]model.Review
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{reviewId} [get]
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	review, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"review": review})
}

// UpdateReview godoc
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review ID"
// @Param request body model.ReviewUpdate true "Fields to change"
// @Success 201 {object} map[string]model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{reviewId} [patch]
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	var req model.ReviewUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.requireAuthor(c, id); err != nil {
		return err
	}

	review, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"review": review})
}

// RemoveReview godoc
// @Summary Remove a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param reviewId path int true "Review ID"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{reviewId}/remove [patch]
func (h *ReviewHandler) RemoveReview(c echo.Context) error {
	id, err := pathID(c, "reviewId")
	if err != nil {
		return err
	}
	if err := h.requireAuthor(c, id); err != nil {
		return err
	}
	if err := h.svc.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"reviewId": id, "deleted": true})
}

// requireAuthor fails unless the token belongs to the author of review id.
func (h *ReviewHandler) requireAuthor(c echo.Context, id uint) error {
	review, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	_, err = requireUser(c, h.users, review.UserID)
	return err
}
