package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

var sellerColumns = map[string]string{
	"companyName": "company_name",
	"contactInfo": "contact_info",
}

// SellerRepository defines seller persistence operations.
type SellerRepository interface {
	// Register inserts the user and its seller row in one transaction.
	Register(ctx context.Context, user *model.User, seller *model.Seller) error
	// FindByID, FindByCompanyName and List preload the backing user.
	FindByID(ctx context.Context, id uint) (*model.Seller, error)
	FindByCompanyName(ctx context.Context, companyName string) (*model.Seller, error)
	CompanyNameTaken(ctx context.Context, companyName string) (bool, error)
	List(ctx context.Context) ([]model.Seller, error)
	// Update applies sellerFields to the seller row and userFields to its
	// user row in one transaction. Either may be empty.
	Update(ctx context.Context, id uint, sellerFields, userFields model.Fields) error
	// SoftDelete flags the seller and its backing user deleted.
	SoftDelete(ctx context.Context, id uint) error
}

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository.
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Register(ctx context.Context, user *model.User, seller *model.Seller) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user.IsSeller = true
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		seller.SellerID = user.UserID
		return tx.Omit(clause.Associations).Create(seller).Error
	})
}

func (r *sellerRepository) FindByID(ctx context.Context, id uint) (*model.Seller, error) {
	var seller model.Seller
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("seller_id = ? AND deleted = ?", id, false).
		First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) FindByCompanyName(ctx context.Context, companyName string) (*model.Seller, error) {
	var seller model.Seller
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("company_name = ? AND deleted = ?", companyName, false).
		First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) CompanyNameTaken(ctx context.Context, companyName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Seller{}).Where("company_name = ?", companyName).Count(&count).Error
	return count > 0, err
}

func (r *sellerRepository) List(ctx context.Context) ([]model.Seller, error) {
	sellers := []model.Seller{}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("deleted = ?", false).
		Order("seller_id").
		Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepository) Update(ctx context.Context, id uint, sellerFields, userFields model.Fields) error {
	if len(sellerFields) == 0 && len(userFields) == 0 {
		return apperr.BadRequest("No data provided")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(sellerFields) > 0 {
			if err := updateColumns(tx, "sellers", sellerFields, sellerColumns,
				"seller_id = ? AND deleted = ?", id, false); err != nil {
				return err
			}
		}
		if len(userFields) > 0 {
			return updateColumns(tx, "users", userFields, userColumns,
				"user_id = ? AND deleted = ?", id, false)
		}
		return nil
	})
}

func (r *sellerRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE users SET deleted = ? WHERE user_id = ?", true, id).Error; err != nil {
			return err
		}
		return tx.Exec("UPDATE sellers SET deleted = ? WHERE seller_id = ?", true, id).Error
	})
}
