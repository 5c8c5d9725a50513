package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/repository"
)

var maxRating = decimal.NewFromInt(5)

// ReviewService contains review-related business logic.
type ReviewService interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	// FindAll lists every review, or those of one product when productID is
	// non-zero.
	FindAll(ctx context.Context, productID uint) ([]model.Review, error)
	Get(ctx context.Context, id uint) (*model.Review, error)
	Update(ctx context.Context, id uint, upd model.ReviewUpdate) (*model.Review, error)
	Remove(ctx context.Context, id uint) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	users    repository.UserRepository
	products repository.ProductRepository
	now      func() time.Time
}

// NewReviewService builds a review service.
func NewReviewService(repo repository.ReviewRepository, users repository.UserRepository, products repository.ProductRepository) ReviewService {
	return &reviewService{repo: repo, users: users, products: products, now: time.Now}
}

func checkRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return apperr.BadRequest("Rating must be between 0 and 5")
	}
	return nil
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if err := checkRating(review.Rating); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, review.UserID); err != nil {
		return nil, lookupErr(err, "find user", "No user with ID: %d", review.UserID)
	}
	if _, err := s.products.FindByID(ctx, review.ProductID); err != nil {
		return nil, lookupErr(err, "find product", "No product with ID: %d", review.ProductID)
	}

	review.ReviewID = 0
	review.ReviewDate = s.now().UTC()
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *reviewService) FindAll(ctx context.Context, productID uint) ([]model.Review, error) {
	reviews, err := s.repo.List(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "find review", "No review with ID: %d", id)
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, id uint, upd model.ReviewUpdate) (*model.Review, error) {
	fields := upd.Fields()
	if len(fields) == 0 {
		return nil, apperr.BadRequest("No data provided")
	}
	if upd.Rating != nil {
		if err := checkRating(*upd.Rating); err != nil {
			return nil, err
		}
	}
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *reviewService) Remove(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("remove review: %w", err)
	}
	return nil
}
