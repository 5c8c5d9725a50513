package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"meatmarket/docs"
	"meatmarket/internal/auth"
	"meatmarket/internal/cache"
	"meatmarket/internal/checkout"
	"meatmarket/internal/config"
	"meatmarket/internal/db"
	"meatmarket/internal/handler"
	"meatmarket/internal/repository"
	"meatmarket/internal/router"
	"meatmarket/internal/service"
)

// @title Meat Market API
// @version 1.0
// @description Marketplace API for buyers, sellers, products, orders and reviews.
// @host localhost:3001
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unavailable at %s, product cache and logout are disabled: %v", cfg.RedisAddr, err)
	}
	cancel()

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	sellerRepo := repository.NewSellerRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	userService := service.NewUserService(userRepo, orderRepo, cfg.BcryptCost)
	sellerService := service.NewSellerService(userRepo, sellerRepo, productRepo, cfg.BcryptCost)
	productService := service.NewProductService(productRepo, sellerRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, userRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo)
	authService := service.NewAuthService(userService, sellerService, jwtService, tokenStore)
	checkoutService := service.NewCheckoutService(
		checkout.NewStripeProvider(cfg.StripeSecretKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL),
	)
	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set, checkout sessions will fail")
	}

	e := echo.New()
	router.Register(e, cfg, authService, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Seller:  handler.NewSellerHandler(sellerService, userService, authService),
		Product: handler.NewProductHandler(productService, reviewService, userService),
		Review:  handler.NewReviewHandler(reviewService, userService),
		Order:   handler.NewOrderHandler(orderService, userService),
		Payment: handler.NewPaymentHandler(checkoutService),
	})

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = host
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		if host == cfg.SwaggerHost {
			swaggerURL = "http://" + swaggerURL
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
