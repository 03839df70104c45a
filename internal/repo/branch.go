package repo

import (
	"JewelryStore/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BranchRepository — справочник филиалов.
type BranchRepository interface {
	Create(ctx context.Context, b *model.Branch) error
	GetByID(ctx context.Context, id string) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	// Update применяет частичное обновление; отсутствующий филиал даёт gorm.ErrRecordNotFound.
	Update(ctx context.Context, id string, updates map[string]any) error
	// Delete удаляет филиал вместе с его позициями и отвязывает учётные записи.
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// Lock — Exists с блокировкой строки филиала до конца транзакции (SELECT ... FOR UPDATE).
	// Одобрения в один филиал-получатель на postgres выполняются по очереди.
	// SQLite блокировок строк не знает, там запись и так сериализована.
	Lock(ctx context.Context, id string) (bool, error)
}

type branchRepo struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepo{db: db}
}

func (r *branchRepo) Create(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) GetByID(ctx context.Context, id string) (*model.Branch, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var b model.Branch
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *branchRepo) List(ctx context.Context) ([]model.Branch, error) {
	var out []model.Branch
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *branchRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		ok, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return gorm.ErrRecordNotFound
		}
		return nil
	}
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).Model(&model.Branch{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *branchRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Branch{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("branch_id = ?", id).Delete(&model.Jewelry{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Account{}).
			Where("branch_id = ?", id).
			Update("branch_id", nil).Error
	})
}

func (r *branchRepo) Exists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Branch{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *branchRepo) Lock(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var b model.Branch
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Take(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
