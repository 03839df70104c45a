package service

import (
	"JewelryStore/internal/model"
	"JewelryStore/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.AccountRepository
type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error) {
	args := m.Called(ctx, a)
	if u, ok := args.Get(0).(*model.Account); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.Account); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.Account); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.AccountRepository = (*mockAccountRepo)(nil)

// мок для repo.BranchRepository
type mockBranchRepo struct{ mock.Mock }

func (m *mockBranchRepo) Create(ctx context.Context, b *model.Branch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBranchRepo) GetByID(ctx context.Context, id string) (*model.Branch, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*model.Branch); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBranchRepo) List(ctx context.Context) ([]model.Branch, error) {
	args := m.Called(ctx)
	if b, ok := args.Get(0).([]model.Branch); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBranchRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *mockBranchRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBranchRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockBranchRepo) Lock(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var _ repo.BranchRepository = (*mockBranchRepo)(nil)
