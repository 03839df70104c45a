package repo

import (
	"JewelryStore/internal/model"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Ключи — UUID. Произвольная строка вместо id должна давать «не найдено», а не ошибку
// запроса: на postgres такой текст в uuid-колонке ломает сам запрос.
func TestRepositories_MalformedIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewRepositories(db)
	ctx := context.Background()
	const bad = "not-a-uuid"

	// рядом лежат настоящие записи, чтобы пустой ответ не был случайным
	b := mkBranch(t, r.Branches, "North")
	j := mkJewelry(t, r.Jewelry, "Band", b.ID, 2)
	mkTransfer(t, r.Transfers, b.ID, branchB, time.Now().UTC())

	t.Run("accounts", func(t *testing.T) {
		_, err := r.Accounts.GetByID(ctx, bad)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("branches", func(t *testing.T) {
		_, err := r.Branches.GetByID(ctx, bad)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		ok, err := r.Branches.Exists(ctx, bad)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = r.Branches.Lock(ctx, bad)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.ErrorIs(t, r.Branches.Update(ctx, bad, map[string]any{"name": "x"}), gorm.ErrRecordNotFound)
		assert.ErrorIs(t, r.Branches.Delete(ctx, bad), gorm.ErrRecordNotFound)
	})

	t.Run("jewelry", func(t *testing.T) {
		_, err := r.Jewelry.GetByID(ctx, bad)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, r.Jewelry.Update(ctx, bad, map[string]any{"name": "x"}), gorm.ErrRecordNotFound)
		assert.ErrorIs(t, r.Jewelry.Delete(ctx, bad), gorm.ErrRecordNotFound)

		_, err = r.Jewelry.AdjustQuantity(ctx, bad, -1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		_, err = r.Jewelry.FindMatching(ctx, j.Name, j.Category, j.Material, bad)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		list, err := r.Jewelry.List(ctx, JewelryFilter{BranchID: bad})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("transfers", func(t *testing.T) {
		_, err := r.Transfers.GetByID(ctx, bad)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		err = r.Transfers.UpdateStatus(ctx, bad, model.TransferApproved, uuid.NewString(), time.Now().UTC())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		list, err := r.Transfers.List(ctx, TransferFilter{BranchID: bad})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	// записи не пострадали
	got, err := r.Jewelry.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}
