package repo

import (
	"JewelryStore/internal/model"
	"context"

	"gorm.io/gorm"
)

// AccountRepository — доступ к учётным записям.
type AccountRepository interface {
	// CreateAccount сохраняет учётную запись; занятый логин даёт ErrUsernameTaken.
	CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByID(ctx context.Context, id string) (*model.Account, error)
	Count(ctx context.Context) (int64, error)
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateAccount(ctx context.Context, a *model.Account) (*model.Account, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return a, nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (*model.Account, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var a model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).Count(&n).Error
	return n, err
}
