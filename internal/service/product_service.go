package service

import (
	"context"
	"fmt"
	"time"

	"meatmarket/internal/cache"
	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/repository"
)

const productCacheTTL = 10 * time.Minute

// ProductService contains product-related business logic.
type ProductService interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Update(ctx context.Context, id uint, upd model.ProductUpdate) (*model.Product, error)
	Remove(ctx context.Context, id uint) error
}

type productService struct {
	repo    repository.ProductRepository
	sellers repository.SellerRepository
	cache   *cache.Client
}

// NewProductService builds a product service. cache may be nil.
func NewProductService(repo repository.ProductRepository, sellers repository.SellerRepository, cache *cache.Client) ProductService {
	return &productService{repo: repo, sellers: sellers, cache: cache}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if _, err := s.sellers.FindByID(ctx, product.SellerID); err != nil {
		return nil, lookupErr(err, "find seller", "No seller with Id: %d", product.SellerID)
	}
	product.ProductID = 0
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) FindAll(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, apperr.BadRequest("Min price cannot be greater than max price")
	}
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get reads through the product cache.
func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	var cached model.Product
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.find(ctx, id, "No product with ID: %d")
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, s.cacheKey(id), product, productCacheTTL)
	return product, nil
}

func (s *productService) find(ctx context.Context, id uint, notFound string) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "find product", notFound, id)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, upd model.ProductUpdate) (*model.Product, error) {
	fields := upd.Fields()
	if len(fields) == 0 {
		return nil, apperr.BadRequest("No data provided")
	}
	if _, err := s.find(ctx, id, "No product found with ID: %d"); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.find(ctx, id, "No product found with ID: %d")
}

func (s *productService) Remove(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id, "No product found with ID: %d"); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("remove product: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
