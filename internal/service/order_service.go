package service

import (
	"context"
	"fmt"
	"time"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/repository"
)

// OrderService contains order-related business logic.
type OrderService interface {
	// Create places an order for userID. Each line item is priced at the
	// product's current price; pricePaidInCents is stored as given.
	Create(ctx context.Context, userID uint, items []model.NewLineItem, pricePaidInCents int64) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Order, error)
	Get(ctx context.Context, id uint) (*model.Order, error)
	Update(ctx context.Context, id uint, upd model.OrderUpdate) (*model.Order, error)
	Remove(ctx context.Context, id uint) error
}

type orderService struct {
	repo     repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
	now      func() time.Time
}

// NewOrderService builds an order service.
func NewOrderService(repo repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) OrderService {
	return &orderService{repo: repo, users: users, products: products, now: time.Now}
}

func (s *orderService) Create(ctx context.Context, userID uint, items []model.NewLineItem, pricePaidInCents int64) (*model.Order, error) {
	if len(items) == 0 {
		return nil, apperr.BadRequest("Order must contain at least one product")
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, lookupErr(err, "find user", "No user with ID: %d", userID)
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	lineItems := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		product, ok := products[it.ProductID]
		if !ok {
			return nil, apperr.NotFound("No product with ID: %d", it.ProductID)
		}
		lineItems = append(lineItems, model.LineItem{
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			PriceInCents: product.PriceInCents,
		})
	}

	order := &model.Order{
		UserID:           userID,
		PricePaidInCents: pricePaidInCents,
		Status:           model.OrderStatusProcessing,
		OrderDate:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, order, lineItems); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.Products = lineItems
	return order, nil
}

func (s *orderService) FindAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) FindByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	orders, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "find order", "No order with ID: %d", id)
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id uint, upd model.OrderUpdate) (*model.Order, error) {
	fields := upd.Fields()
	if len(fields) == 0 && len(upd.Products) == 0 {
		return nil, apperr.BadRequest("No data provided")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("No such order with ID: %d", id)
	}

	if upd.UserID != nil {
		if _, err := s.users.FindByID(ctx, *upd.UserID); err != nil {
			return nil, lookupErr(err, "find user", "No user with ID: %d", *upd.UserID)
		}
	}

	if err := s.repo.Update(ctx, id, fields, upd.Products); err != nil {
		if apperr.KindOf(err) != 0 {
			return nil, err
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *orderService) Remove(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("remove order: %w", err)
	}
	return nil
}
