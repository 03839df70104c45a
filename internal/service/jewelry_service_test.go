package service

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intptr(i int) *int { return &i }

func TestJewelryService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("staff is pinned to own branch", func(t *testing.T) {
		j, err := f.jewelry.Create(ctx, f.staffA, JewelryInput{
			Name: "Pearl", Category: "earrings", Material: "silver", Price: decptr("80"), BranchID: f.branchB.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.branchA.ID, j.BranchID)
		assert.Equal(t, 1, j.Quantity, "quantity defaults to 1")
		assert.False(t, j.Weight.Valid)
	})

	t.Run("admin picks branch", func(t *testing.T) {
		j, err := f.jewelry.Create(ctx, f.admin, JewelryInput{
			Name: "Pearl", Category: "earrings", Material: "silver", Price: decptr("80"),
			Weight: decptr("2.5"), Quantity: intptr(0), BranchID: f.branchB.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, f.branchB.ID, j.BranchID)
		assert.Equal(t, 0, j.Quantity)
		assert.True(t, j.Weight.Valid)
	})

	t.Run("admin without branch", func(t *testing.T) {
		_, err := f.jewelry.Create(ctx, f.admin, JewelryInput{Name: "Pearl", Category: "earrings", Material: "silver", Price: decptr("80")})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("admin unknown branch", func(t *testing.T) {
		_, err := f.jewelry.Create(ctx, f.admin, JewelryInput{Name: "Pearl", Category: "earrings", Material: "silver", Price: decptr("80"), BranchID: "missing"})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("staff without branch", func(t *testing.T) {
		orphan := policy.Actor{AccountID: "o", Role: model.RoleStaff}
		_, err := f.jewelry.Create(ctx, orphan, JewelryInput{Name: "Pearl", Category: "earrings", Material: "silver", Price: decptr("80")})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("field validation", func(t *testing.T) {
		_, err := f.jewelry.Create(ctx, f.staffA, JewelryInput{Category: "earrings", Material: "silver", Price: decptr("-1"), Quantity: intptr(-2)})
		require.ErrorIs(t, err, apperr.ErrValidation)
		var e *apperr.Error
		require.ErrorAs(t, err, &e)
		assert.Contains(t, e.Fields, "name")
		assert.Contains(t, e.Fields, "price")
		assert.Contains(t, e.Fields, "quantity")
	})

	t.Run("price is required", func(t *testing.T) {
		_, err := f.jewelry.Create(ctx, f.staffA, JewelryInput{Name: "Pearl", Category: "earrings", Material: "silver"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestJewelryService_BranchScope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	own := f.addJewelry(t, "Band", f.branchA.ID, 2)
	foreign := f.addJewelry(t, "Band", f.branchB.ID, 2)

	t.Run("update own", func(t *testing.T) {
		got, err := f.jewelry.Update(ctx, f.staffA, own.ID, JewelryPatch{Price: decptr("99.90"), Quantity: intptr(7)})
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("99.9")))
		assert.Equal(t, 7, got.Quantity)
		assert.Equal(t, "Band", got.Name)
	})

	t.Run("update foreign", func(t *testing.T) {
		_, err := f.jewelry.Update(ctx, f.staffA, foreign.ID, JewelryPatch{Name: strptr("Stolen")})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("delete foreign", func(t *testing.T) {
		err := f.jewelry.Delete(ctx, f.staffA, foreign.ID)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("missing is not found before forbidden", func(t *testing.T) {
		_, err := f.jewelry.Update(ctx, f.staffA, "missing", JewelryPatch{Name: strptr("x")})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.ErrorIs(t, f.jewelry.Delete(ctx, f.staffA, "missing"), apperr.ErrNotFound)
	})

	t.Run("negative quantity patch", func(t *testing.T) {
		_, err := f.jewelry.Update(ctx, f.staffA, own.ID, JewelryPatch{Quantity: intptr(-1)})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("read foreign is allowed", func(t *testing.T) {
		got, err := f.jewelry.Get(ctx, f.staffA, foreign.ID)
		require.NoError(t, err)
		assert.Equal(t, f.branchB.ID, got.BranchID)
	})

	t.Run("admin deletes anything", func(t *testing.T) {
		require.NoError(t, f.jewelry.Delete(ctx, f.admin, foreign.ID))
		_, err := f.jewelry.Get(ctx, f.admin, foreign.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestJewelryService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addJewelry(t, "Band", f.branchA.ID, 1)
	f.addJewelry(t, "Solitaire", f.branchA.ID, 1)
	f.addJewelry(t, "Band", f.branchB.ID, 1)

	own, err := f.jewelry.List(ctx, f.staffA, JewelryListFilter{})
	require.NoError(t, err)
	assert.Len(t, own, 2)

	other, err := f.jewelry.List(ctx, f.staffA, JewelryListFilter{BranchID: f.branchB.ID})
	require.NoError(t, err)
	assert.Len(t, other, 1)

	all, err := f.jewelry.List(ctx, f.admin, JewelryListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := f.jewelry.List(ctx, f.admin, JewelryListFilter{Material: "platinum"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
