package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

func TestSellerRepository_Register(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB)
	ctx := context.Background()

	user, err := NewUserRepository(gormDB).FindByID(ctx, f.seller.SellerID)
	require.NoError(t, err)
	assert.Equal(t, "s1", user.Username)
	assert.True(t, user.IsSeller)

	taken, err := NewSellerRepository(gormDB).CompanyNameTaken(ctx, "Seller 1")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestSellerRepository_SoftDeleteCascadesToUser(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB)
	sellers := NewSellerRepository(gormDB)
	users := NewUserRepository(gormDB)
	ctx := context.Background()

	require.NoError(t, sellers.SoftDelete(ctx, f.seller.SellerID))

	_, err := sellers.FindByID(ctx, f.seller.SellerID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = users.FindByUsername(ctx, "s1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// buyers are untouched
	_, err = users.FindByUsername(ctx, "u1")
	assert.NoError(t, err)

	list, err := sellers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSellerRepository_Update(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB)
	sellers := NewSellerRepository(gormDB)
	ctx := context.Background()

	upd := model.SellerUpdate{ContactInfo: ptr("555-0100")}
	upd.LastName = ptr("Renamed")
	require.NoError(t, sellers.Update(ctx, f.seller.SellerID, upd.SellerFields(), upd.UserUpdate.Fields()))

	got, err := sellers.FindByID(ctx, f.seller.SellerID)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.ContactInfo)
	assert.Equal(t, "Seller 1", got.CompanyName)
	assert.Equal(t, "Renamed", got.User.LastName)
	assert.Equal(t, "s1", got.User.Username)

	err = sellers.Update(ctx, f.seller.SellerID, nil, nil)
	assert.True(t, apperr.IsBadRequest(err))
}
