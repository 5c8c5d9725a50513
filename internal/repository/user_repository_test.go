package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"meatmarket/internal/model"
)

func TestUserRepository_UpdateAndSoftDelete(t *testing.T) {
	gormDB := newTestDB(t)
	f := seed(t, gormDB)
	repo := NewUserRepository(gormDB)
	ctx := context.Background()

	fields := model.UserUpdate{FirstName: ptr("New"), ShippingAddress: ptr("2 Other Rd")}.Fields()
	require.NoError(t, repo.Update(ctx, f.buyer.UserID, fields))

	got, err := repo.FindByUsername(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
	assert.Equal(t, "2 Other Rd", got.ShippingAddress)
	assert.Equal(t, "U1L", got.LastName)

	require.NoError(t, repo.SoftDelete(ctx, f.buyer.UserID))

	_, err = repo.FindByUsername(ctx, "u1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the username stays reserved after removal
	taken, err := repo.UsernameTaken(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, taken)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "s1", users[0].Username)
}
