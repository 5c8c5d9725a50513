package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

func TestProductService_Create(t *testing.T) {
	products := new(MockProductRepository)
	sellers := new(MockSellerRepository)
	sellers.On("FindByID", mock.Anything, uint(2)).Return(&model.Seller{SellerID: 2}, nil)
	sellers.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
	products.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
	svc := NewProductService(products, sellers, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.Product{SellerID: 2, Name: "Ribeye"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &model.Product{SellerID: 3, Name: "Ribeye"})
	assert.True(t, apperr.IsNotFound(err))
	products.AssertNumberOfCalls(t, "Create", 1)
}

func TestProductService_GetAfterRemove(t *testing.T) {
	products := new(MockProductRepository)
	products.On("FindByID", mock.Anything, uint(1)).Return(&model.Product{ProductID: 1}, nil).Once()
	products.On("SoftDelete", mock.Anything, uint(1)).Return(nil)
	products.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewProductService(products, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, 1))

	_, err := svc.Get(ctx, 1)
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "No product with ID: 1")
}

func TestProductService_Update(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		svc := NewProductService(new(MockProductRepository), nil, nil)

		_, err := svc.Update(context.Background(), 1, model.ProductUpdate{})

		assert.True(t, apperr.IsBadRequest(err))
	})

	t.Run("missing product", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewProductService(products, nil, nil)

		_, err := svc.Update(context.Background(), 9, model.ProductUpdate{Name: strPtr("x")})

		assert.EqualError(t, err, "No product found with ID: 9")
	})

	t.Run("updates", func(t *testing.T) {
		products := new(MockProductRepository)
		price := int64(1500)
		products.On("FindByID", mock.Anything, uint(1)).Return(&model.Product{ProductID: 1, PriceInCents: 1500}, nil)
		products.On("Update", mock.Anything, uint(1), model.Fields{{Key: "priceInCents", Value: int64(1500)}}).Return(nil)
		svc := NewProductService(products, nil, nil)

		got, err := svc.Update(context.Background(), 1, model.ProductUpdate{PriceInCents: &price})

		require.NoError(t, err)
		assert.Equal(t, int64(1500), got.PriceInCents)
		products.AssertExpectations(t)
	})
}

func TestProductService_FindAllRejectsInvertedRange(t *testing.T) {
	svc := NewProductService(new(MockProductRepository), nil, nil)

	_, err := svc.FindAll(context.Background(), model.ProductFilter{MinPrice: 500, MaxPrice: 100})

	assert.True(t, apperr.IsBadRequest(err))
}
