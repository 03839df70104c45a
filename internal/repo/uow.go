package repo

import (
	"context"

	"gorm.io/gorm"
)

// Repositories — набор репозиториев, привязанных к одному соединению или транзакции.
type Repositories struct {
	Accounts  AccountRepository
	Branches  BranchRepository
	Jewelry   JewelryRepository
	Transfers TransferRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Accounts:  NewAccountRepository(db),
		Branches:  NewBranchRepository(db),
		Jewelry:   NewJewelryRepository(db),
		Transfers: NewTransferRepository(db),
	}
}

// UnitOfWork выполняет fn в одной транзакции. Ошибка fn откатывает все изменения.
// Внутри fn можно пользоваться только переданными репозиториями.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) WithinTx(ctx context.Context, fn func(r Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
