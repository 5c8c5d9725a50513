package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

func TestSellerService_Register(t *testing.T) {
	t.Run("company name taken", func(t *testing.T) {
		users := new(MockUserRepository)
		sellers := new(MockSellerRepository)
		users.On("UsernameTaken", mock.Anything, "s2").Return(false, nil)
		users.On("EmailTaken", mock.Anything, "s2@seller.com").Return(false, nil)
		sellers.On("CompanyNameTaken", mock.Anything, "Seller 1").Return(true, nil)
		svc := NewSellerService(users, sellers, nil, bcrypt.MinCost)

		_, err := svc.Register(context.Background(),
			&model.User{Username: "s2", Password: "password", Email: "s2@seller.com"},
			&model.Seller{CompanyName: "Seller 1"})

		assert.True(t, apperr.IsBadRequest(err))
		assert.EqualError(t, err, "Company name already exists: Seller 1")
		sellers.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("registers", func(t *testing.T) {
		users := new(MockUserRepository)
		sellers := new(MockSellerRepository)
		users.On("UsernameTaken", mock.Anything, "s2").Return(false, nil)
		users.On("EmailTaken", mock.Anything, "s2@seller.com").Return(false, nil)
		sellers.On("CompanyNameTaken", mock.Anything, "Seller 2").Return(false, nil)
		sellers.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Seller")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*model.User)
				u.UserID, u.IsSeller = 9, true
				args.Get(2).(*model.Seller).SellerID = 9
			}).
			Return(nil)
		svc := NewSellerService(users, sellers, nil, bcrypt.MinCost)

		profile, err := svc.Register(context.Background(),
			&model.User{Username: "s2", Password: "password", Email: "s2@seller.com"},
			&model.Seller{CompanyName: "Seller 2"})

		require.NoError(t, err)
		assert.Equal(t, uint(9), profile.SellerID)
		assert.Equal(t, "s2", profile.Username)
		assert.Equal(t, "Seller 2", profile.CompanyName)
	})
}

func TestSellerService_Update(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		svc := NewSellerService(nil, new(MockSellerRepository), nil, bcrypt.MinCost)

		_, err := svc.Update(context.Background(), 1, model.SellerUpdate{})

		assert.True(t, apperr.IsBadRequest(err))
	})

	t.Run("missing seller", func(t *testing.T) {
		sellers := new(MockSellerRepository)
		sellers.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewSellerService(nil, sellers, nil, bcrypt.MinCost)

		_, err := svc.Update(context.Background(), 5, model.SellerUpdate{ContactInfo: strPtr("x")})

		assert.True(t, apperr.IsNotFound(err))
		assert.EqualError(t, err, "No seller found with ID: 5")
	})

	t.Run("splits seller and user fields", func(t *testing.T) {
		sellers := new(MockSellerRepository)
		seller := &model.Seller{SellerID: 5, CompanyName: "Seller 1", User: model.User{UserID: 5, Username: "s1"}}
		sellers.On("FindByID", mock.Anything, uint(5)).Return(seller, nil)
		sellers.On("Update", mock.Anything, uint(5),
			model.Fields{{Key: "contactInfo", Value: "555"}},
			model.Fields{{Key: "email", Value: "s1@new.com"}}).Return(nil)
		svc := NewSellerService(nil, sellers, nil, bcrypt.MinCost)

		upd := model.SellerUpdate{ContactInfo: strPtr("555")}
		upd.Email = strPtr("s1@new.com")
		profile, err := svc.Update(context.Background(), 5, upd)

		require.NoError(t, err)
		assert.Equal(t, "s1", profile.Username)
		sellers.AssertExpectations(t)
	})
}

func TestSellerService_RemoveAndProducts(t *testing.T) {
	sellers := new(MockSellerRepository)
	products := new(MockProductRepository)
	sellers.On("FindByID", mock.Anything, uint(5)).Return(&model.Seller{SellerID: 5}, nil)
	sellers.On("FindByID", mock.Anything, uint(6)).Return(nil, gorm.ErrRecordNotFound)
	sellers.On("SoftDelete", mock.Anything, uint(5)).Return(nil)
	products.On("List", mock.Anything, model.ProductFilter{SellerID: 5}).Return([]model.Product{{ProductID: 1, SellerID: 5}}, nil)
	svc := NewSellerService(nil, sellers, products, bcrypt.MinCost)
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, 5))
	assert.True(t, apperr.IsNotFound(svc.Remove(ctx, 6)))

	list, err := svc.Products(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Products(ctx, 6)
	assert.True(t, apperr.IsNotFound(err))
	sellers.AssertNumberOfCalls(t, "SoftDelete", 1)
}
