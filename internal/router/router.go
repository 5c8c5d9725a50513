package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"meatmarket/internal/config"
	apperr "meatmarket/internal/errors"
	"meatmarket/internal/handler"
	"meatmarket/internal/service"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Seller  *handler.SellerHandler
	Product *handler.ProductHandler
	Review  *handler.ReviewHandler
	Order   *handler.OrderHandler
	Payment *handler.PaymentHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, authService service.AuthService, h Handlers) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	secured := JWTMiddleware(authService)

	// Auth
	e.POST("/auth/token", h.Auth.Token)
	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/logout", h.Auth.Logout, secured)

	// Users
	users := e.Group("/users", secured)
	users.GET("", h.User.ListUsers)
	users.GET("/:username", h.User.GetUser)
	users.PATCH("/:username", h.User.UpdateUser)
	users.DELETE("/:username", h.User.DeleteUser)
	users.GET("/:username/orders", h.User.ListUserOrders)

	// Sellers
	sellers := e.Group("/sellers")
	sellers.POST("/register", h.Seller.RegisterSeller)
	sellers.GET("", h.Seller.ListSellers)
	sellers.GET("/:sellerId", h.Seller.GetSeller)
	sellers.GET("/:sellerId/products", h.Seller.ListSellerProducts)
	sellers.PATCH("/:sellerId", h.Seller.UpdateSeller, secured)
	sellers.PATCH("/:sellerId/remove", h.Seller.RemoveSeller, secured)

	// Products
	products := e.Group("/products")
	products.GET("", h.Product.ListProducts)
	products.POST("/create", h.Product.CreateProduct, secured)
	products.GET("/:productId", h.Product.GetProduct)
	products.GET("/:productId/reviews/:reviewId", h.Product.GetProductReview)
	products.PATCH("/:productId", h.Product.UpdateProduct, secured)
	products.PATCH("/:productId/remove", h.Product.RemoveProduct, secured)

	// Orders
	orders := e.Group("/orders", secured)
	orders.GET("", h.Order.ListOrders)
	orders.POST("/create", h.Order.CreateOrder)
	orders.GET("/:orderId", h.Order.GetOrder)
	orders.PATCH("/:orderId", h.Order.UpdateOrder)
	orders.PATCH("/:orderId/remove", h.Order.RemoveOrder)

	// Reviews
	reviews := e.Group("/reviews")
	reviews.GET("", h.Review.ListReviews)
	reviews.POST("/create", h.Review.CreateReview, secured)
	reviews.GET("/:reviewId", h.Review.GetReview)
	reviews.PATCH("/:reviewId", h.Review.UpdateReview, secured)
	reviews.PATCH("/:reviewId/remove", h.Review.RemoveReview, secured)

	// Payment
	e.POST("/payment/create-checkout-session", h.Payment.CreateCheckoutSession, secured)
}

// JWTMiddleware accepts "Authorization: Bearer <token>" headers carrying an
// unrevoked token and stores its claims under handler.ClaimsKey.
func JWTMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.Verify(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if apperr.KindOf(err) != 0 {
				return err
			}
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				return apperr.Unauthorized("Authorization header missing")
			}
			return apperr.Unauthorized("Invalid token")
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
