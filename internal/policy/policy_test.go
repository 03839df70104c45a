package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JewelryStore/internal/apperr"
	"JewelryStore/internal/model"
)

var (
	admin   = Actor{AccountID: "a1", Role: model.RoleAdmin}
	staffA  = Actor{AccountID: "s1", Role: model.RoleStaff, BranchID: "A"}
	orphan  = Actor{AccountID: "s2", Role: model.RoleStaff}
	unknown = Actor{AccountID: "x", Role: "guest", BranchID: "A"}
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		action  Action
		res     Resource
		allowed bool
	}{
		{"admin any action", admin, DeleteJewelry, Resource{BranchID: "B"}, true},
		{"admin manages branches", admin, ManageBranches, Resource{}, true},
		{"staff updates own jewelry", staffA, UpdateJewelry, Resource{BranchID: "A"}, true},
		{"staff updates foreign jewelry", staffA, UpdateJewelry, Resource{BranchID: "B"}, false},
		{"staff deletes foreign jewelry", staffA, DeleteJewelry, Resource{BranchID: "B"}, false},
		{"staff creates jewelry at own branch", staffA, CreateJewelry, Resource{BranchID: "A"}, true},
		{"staff reads foreign jewelry", staffA, ReadJewelry, Resource{BranchID: "B"}, true},
		{"staff creates transfer", staffA, CreateTransfer, Resource{FromBranchID: "B", ToBranchID: "A"}, true},
		{"staff responds as source", staffA, RespondTransfer, Resource{FromBranchID: "A", ToBranchID: "B"}, true},
		{"staff responds as destination", staffA, RespondTransfer, Resource{FromBranchID: "B", ToBranchID: "A"}, false},
		{"staff views as destination", staffA, ViewTransfer, Resource{FromBranchID: "B", ToBranchID: "A"}, true},
		{"staff views unrelated", staffA, ViewTransfer, Resource{FromBranchID: "B", ToBranchID: "C"}, false},
		{"staff manages branches", staffA, ManageBranches, Resource{}, false},
		{"staff registers accounts", staffA, RegisterAccount, Resource{}, false},
		{"staff without branch never matches", orphan, UpdateJewelry, Resource{BranchID: ""}, false},
		{"unknown role", unknown, ReadJewelry, Resource{BranchID: "A"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.action, tt.res)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperr.ErrForbidden)
		})
	}
}

func TestJewelryListBranch(t *testing.T) {
	t.Run("staff defaults to own branch", func(t *testing.T) {
		b, err := JewelryListBranch(staffA, "")
		require.NoError(t, err)
		assert.Equal(t, "A", b)
	})
	t.Run("staff explicit filter kept", func(t *testing.T) {
		b, err := JewelryListBranch(staffA, "B")
		require.NoError(t, err)
		assert.Equal(t, "B", b)
	})
	t.Run("admin unfiltered", func(t *testing.T) {
		b, err := JewelryListBranch(admin, "")
		require.NoError(t, err)
		assert.Empty(t, b)
	})
	t.Run("staff without branch", func(t *testing.T) {
		_, err := JewelryListBranch(orphan, "")
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})
}

func TestTransferListBranch(t *testing.T) {
	b, err := TransferListBranch(staffA, "")
	require.NoError(t, err)
	assert.Equal(t, "A", b)

	_, err = TransferListBranch(staffA, "B")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	b, err = TransferListBranch(admin, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", b)
}
