package service

import (
	"context"
	"fmt"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
	"meatmarket/internal/repository"
)

// SellerService contains seller-related business logic.
type SellerService interface {
	// Register creates user as a seller described by seller.
	Register(ctx context.Context, user *model.User, seller *model.Seller) (*model.SellerProfile, error)
	FindAll(ctx context.Context) ([]model.SellerProfile, error)
	Get(ctx context.Context, id uint) (*model.SellerProfile, error)
	GetByCompany(ctx context.Context, companyName string) (*model.SellerProfile, error)
	Update(ctx context.Context, id uint, upd model.SellerUpdate) (*model.SellerProfile, error)
	Remove(ctx context.Context, id uint) error
	Products(ctx context.Context, id uint) ([]model.Product, error)
}

type sellerService struct {
	users      repository.UserRepository
	sellers    repository.SellerRepository
	products   repository.ProductRepository
	bcryptCost int
}

// NewSellerService builds a seller service.
func NewSellerService(users repository.UserRepository, sellers repository.SellerRepository, products repository.ProductRepository, bcryptCost int) SellerService {
	return &sellerService{users: users, sellers: sellers, products: products, bcryptCost: bcryptCost}
}

func (s *sellerService) Register(ctx context.Context, user *model.User, seller *model.Seller) (*model.SellerProfile, error) {
	if err := checkNewUser(ctx, s.users, user); err != nil {
		return nil, err
	}
	if err := s.checkCompanyName(ctx, seller.CompanyName); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(user.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.sellers.Register(ctx, user, seller); err != nil {
		return nil, fmt.Errorf("register seller: %w", err)
	}
	return model.NewSellerProfile(seller, user), nil
}

func (s *sellerService) checkCompanyName(ctx context.Context, companyName string) error {
	taken, err := s.sellers.CompanyNameTaken(ctx, companyName)
	if err != nil {
		return fmt.Errorf("check company name: %w", err)
	}
	if taken {
		return apperr.BadRequest("Company name already exists: %s", companyName)
	}
	return nil
}

func (s *sellerService) FindAll(ctx context.Context) ([]model.SellerProfile, error) {
	sellers, err := s.sellers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	profiles := make([]model.SellerProfile, 0, len(sellers))
	for i := range sellers {
		profiles = append(profiles, *model.NewSellerProfile(&sellers[i], &sellers[i].User))
	}
	return profiles, nil
}

func (s *sellerService) Get(ctx context.Context, id uint) (*model.SellerProfile, error) {
	seller, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "find seller", "No seller with Id: %d", id)
	}
	return model.NewSellerProfile(seller, &seller.User), nil
}

func (s *sellerService) GetByCompany(ctx context.Context, companyName string) (*model.SellerProfile, error) {
	seller, err := s.sellers.FindByCompanyName(ctx, companyName)
	if err != nil {
		return nil, lookupErr(err, "find seller", "No seller: %s", companyName)
	}
	return model.NewSellerProfile(seller, &seller.User), nil
}

func (s *sellerService) Update(ctx context.Context, id uint, upd model.SellerUpdate) (*model.SellerProfile, error) {
	sellerFields := upd.SellerFields()
	userFields := upd.UserUpdate.Fields()
	if len(sellerFields) == 0 && len(userFields) == 0 {
		return nil, apperr.BadRequest("No data provided")
	}

	current, err := s.sellers.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "find seller", "No seller found with ID: %d", id)
	}

	if upd.CompanyName != nil && *upd.CompanyName != current.CompanyName {
		if err := s.checkCompanyName(ctx, *upd.CompanyName); err != nil {
			return nil, err
		}
	}
	if userFields, err = hashPasswordField(userFields, s.bcryptCost); err != nil {
		return nil, err
	}

	if err := s.sellers.Update(ctx, id, sellerFields, userFields); err != nil {
		return nil, fmt.Errorf("update seller: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *sellerService) Remove(ctx context.Context, id uint) error {
	if _, err := s.sellers.FindByID(ctx, id); err != nil {
		return lookupErr(err, "find seller", "No seller found with ID: %d", id)
	}
	if err := s.sellers.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("remove seller: %w", err)
	}
	return nil
}

func (s *sellerService) Products(ctx context.Context, id uint) ([]model.Product, error) {
	if _, err := s.sellers.FindByID(ctx, id); err != nil {
		return nil, lookupErr(err, "find seller", "No seller with Id: %d", id)
	}
	products, err := s.products.List(ctx, model.ProductFilter{SellerID: id})
	if err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}
	return products, nil
}
