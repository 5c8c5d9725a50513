package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"meatmarket/internal/model"
)

func TestProductRepository_List(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB)
	repo := NewProductRepository(gormDB)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter model.ProductFilter
		want   []uint
	}{
		{"no filter", model.ProductFilter{}, []uint{f.steak.ProductID, f.brisket.ProductID}},
		{"name is case insensitive", model.ProductFilter{Name: "RIB"}, []uint{f.steak.ProductID}},
		{"cut type", model.ProductFilter{CutType: "brisket"}, []uint{f.brisket.ProductID}},
		{"price range", model.ProductFilter{MinPrice: 1500, MaxPrice: 2500}, []uint{f.brisket.ProductID}},
		{"other seller", model.ProductFilter{SellerID: f.seller.SellerID + 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			var ids []uint
			for _, p := range products {
				ids = append(ids, p.ProductID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestProductRepository_UpdateAndSoftDelete(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB)
	repo := NewProductRepository(gormDB)
	ctx := context.Background()

	fields := model.ProductUpdate{PriceInCents: ptr(int64(1250)), ImageURL: ptr("https://img.test/ribeye.png")}.Fields()
	require.NoError(t, repo.Update(ctx, f.steak.ProductID, fields))

	got, err := repo.FindByID(ctx, f.steak.ProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), got.PriceInCents)
	assert.Equal(t, "https://img.test/ribeye.png", got.ImageURL)
	assert.Equal(t, "Ribeye", got.Name)

	require.NoError(t, repo.SoftDelete(ctx, f.steak.ProductID))

	_, err = repo.FindByID(ctx, f.steak.ProductID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	visible, err := repo.FindByIDs(ctx, []uint{f.steak.ProductID, f.brisket.ProductID})
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Contains(t, visible, f.brisket.ProductID)

	all, err := repo.List(ctx, model.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func ptr[T any](v T) *T { return &v }
