package service

import (
	"JewelryStore/internal/model"
	"JewelryStore/internal/policy"
	"JewelryStore/internal/repo"
	"JewelryStore/internal/repo/repotest"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fixture — сервисы поверх in-memory SQLite и два филиала со своими сотрудниками.
type fixture struct {
	db        *gorm.DB
	repos     repo.Repositories
	transfers *TransferService
	jewelry   *JewelryService
	branches  *BranchService

	branchA, branchB *model.Branch
	admin            policy.Actor
	staffA, staffB   policy.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := repotest.NewTestDB(t)
	repos := repo.NewRepositories(db)
	f := &fixture{
		db:        db,
		repos:     repos,
		transfers: NewTransferService(repos, repo.NewUnitOfWork(db), zap.NewNop().Sugar()),
		jewelry:   NewJewelryService(repos.Jewelry, repos.Branches),
		branches:  NewBranchService(repos.Branches, repos.Accounts),
		admin:     policy.Actor{AccountID: "admin-1", Role: model.RoleAdmin},
	}

	ctx := context.Background()
	f.branchA = &model.Branch{Name: "Downtown", Location: "Main st 1"}
	f.branchB = &model.Branch{Name: "Uptown", Location: "Hill rd 9"}
	require.NoError(t, repos.Branches.Create(ctx, f.branchA))
	require.NoError(t, repos.Branches.Create(ctx, f.branchB))

	f.staffA = policy.Actor{AccountID: "staff-a", Role: model.RoleStaff, BranchID: f.branchA.ID}
	f.staffB = policy.Actor{AccountID: "staff-b", Role: model.RoleStaff, BranchID: f.branchB.ID}
	return f
}

// addJewelry кладёт позицию в филиал напрямую через репозиторий.
func (f *fixture) addJewelry(t *testing.T, name, branchID string, qty int) *model.Jewelry {
	t.Helper()
	j := &model.Jewelry{
		Name:        name,
		Category:    "ring",
		Material:    "gold",
		Price:       decimal.RequireFromString("1250.50"),
		Weight:      decimal.NewNullDecimal(decimal.RequireFromString("4.2")),
		Quantity:    qty,
		Description: "18k",
		BranchID:    branchID,
		ImageURL:    "https://img.example/ring.png",
	}
	require.NoError(t, f.repos.Jewelry.Create(context.Background(), j))
	return j
}

func (f *fixture) quantityAt(t *testing.T, name, branchID string) (int, bool) {
	t.Helper()
	j, err := f.repos.Jewelry.FindMatching(context.Background(), name, "ring", "gold", branchID)
	if err != nil {
		return 0, false
	}
	return j.Quantity, true
}
