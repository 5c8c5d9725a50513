package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"meatmarket/internal/model"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	// List returns all visible reviews, or those of one product when
	// productID is non-zero.
	List(ctx context.Context, productID uint) ([]model.Review, error)
	Update(ctx context.Context, id uint, fields model.Fields) error
	SoftDelete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).
		Where("review_id = ? AND deleted = ?", id, false).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context, productID uint) ([]model.Review, error) {
	q := r.db.WithContext(ctx).Where("deleted = ?", false)
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}
	reviews := []model.Review{}
	if err := q.Order("review_id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, id uint, fields model.Fields) error {
	return updateColumns(r.db.WithContext(ctx), "reviews", fields, nil,
		"review_id = ? AND deleted = ?", id, false)
}

func (r *reviewRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Exec(
		"UPDATE reviews SET deleted = ? WHERE review_id = ?", true, id).Error
}
