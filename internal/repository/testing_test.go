package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"meatmarket/internal/db"
	"meatmarket/internal/model"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open("sqlite", "file::memory:")
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gormDB, false))
	return gormDB
}

type fixtures struct {
	buyer   model.User
	seller  model.Seller
	steak   model.Product
	brisket model.Product
}

// seed inserts one buyer, one seller and two products priced 1000 and 2000.
func seed(t *testing.T, gormDB *gorm.DB) fixtures {
	t.Helper()
	ctx := context.Background()

	var f fixtures
	f.buyer = model.User{Username: "u1", Password: "hash", FirstName: "U1F", LastName: "U1L", Email: "user1@user.com", ShippingAddress: "1 Test St"}
	require.NoError(t, NewUserRepository(gormDB).Create(ctx, &f.buyer))

	sellerUser := model.User{Username: "s1", Password: "hash", FirstName: "S1F", LastName: "S1L", Email: "seller1@seller.com"}
	f.seller = model.Seller{CompanyName: "Seller 1", ContactInfo: "858-222-2222"}
	require.NoError(t, NewSellerRepository(gormDB).Register(ctx, &sellerUser, &f.seller))

	products := NewProductRepository(gormDB)
	f.steak = model.Product{SellerID: f.seller.SellerID, Name: "Ribeye", PriceInCents: 1000, MeatType: "beef", CutType: "ribeye", WeightInGrams: 300}
	require.NoError(t, products.Create(ctx, &f.steak))
	f.brisket = model.Product{SellerID: f.seller.SellerID, Name: "Brisket", PriceInCents: 2000, MeatType: "beef", CutType: "brisket", WeightInGrams: 900}
	require.NoError(t, products.Create(ctx, &f.brisket))

	return f
}
