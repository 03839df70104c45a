package repo

import (
	"JewelryStore/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewAccountRepository(db)
	ctx := context.Background()

	// успешное создание
	a, err := r.CreateAccount(ctx, &model.Account{Username: "john", PasswordHash: "hash", Name: "John", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	got, err := r.GetByUsername(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = r.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "john", got.Username)
	assert.Nil(t, got.BranchID)

	// уникальный логин
	_, err = r.CreateAccount(ctx, &model.Account{Username: "john", PasswordHash: "x", Name: "J", Role: model.RoleStaff})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	got, err = r.GetByUsername(ctx, "doesnotexist")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
