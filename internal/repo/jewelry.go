package repo

import (
	"JewelryStore/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// JewelryFilter — фильтр списка позиций; пустые поля не ограничивают выборку.
type JewelryFilter struct {
	BranchID string
	Category string
	Material string
}

// JewelryRepository — складской учёт позиций по филиалам.
type JewelryRepository interface {
	Create(ctx context.Context, j *model.Jewelry) error
	GetByID(ctx context.Context, id string) (*model.Jewelry, error)
	List(ctx context.Context, f JewelryFilter) ([]model.Jewelry, error)
	Update(ctx context.Context, id string, updates map[string]any) error
	Delete(ctx context.Context, id string) error

	// AdjustQuantity атомарно меняет количество на delta и возвращает остаток.
	// Если остаток стал бы отрицательным, возвращает ErrNegativeQuantity и ничего не меняет.
	// При остатке ровно 0 запись удаляется.
	AdjustQuantity(ctx context.Context, id string, delta int) (int, error)

	// FindMatching ищет позицию филиала с точным (регистрозависимым) совпадением
	// названия, категории и материала.
	FindMatching(ctx context.Context, name, category, material, branchID string) (*model.Jewelry, error)
}

type jewelryRepo struct {
	db *gorm.DB
}

func NewJewelryRepository(db *gorm.DB) JewelryRepository {
	return &jewelryRepo{db: db}
}

func (r *jewelryRepo) Create(ctx context.Context, j *model.Jewelry) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jewelryRepo) GetByID(ctx context.Context, id string) (*model.Jewelry, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var j model.Jewelry
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jewelryRepo) List(ctx context.Context, f JewelryFilter) ([]model.Jewelry, error) {
	q := r.db.WithContext(ctx).Model(&model.Jewelry{})
	if f.BranchID != "" {
		if !validID(f.BranchID) {
			return []model.Jewelry{}, nil
		}
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Material != "" {
		q = q.Where("material = ?", f.Material)
	}

	var out []model.Jewelry
	err := q.Order("created_at DESC").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *jewelryRepo) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).Model(&model.Jewelry{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jewelryRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Jewelry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jewelryRepo) AdjustQuantity(ctx context.Context, id string, delta int) (int, error) {
	if !validID(id) {
		return 0, gorm.ErrRecordNotFound
	}
	var remaining int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// условный UPDATE: проверка и изменение в одном запросе
		res := tx.Model(&model.Jewelry{}).
			Where("id = ? AND quantity + ? >= 0", id, delta).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity + ?", delta),
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&model.Jewelry{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrNegativeQuantity
		}

		var j model.Jewelry
		if err := tx.Select("quantity").Where("id = ?", id).Take(&j).Error; err != nil {
			return err
		}
		remaining = j.Quantity
		if remaining == 0 {
			return tx.Where("id = ?", id).Delete(&model.Jewelry{}).Error
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *jewelryRepo) FindMatching(ctx context.Context, name, category, material, branchID string) (*model.Jewelry, error) {
	if !validID(branchID) {
		return nil, gorm.ErrRecordNotFound
	}
	var j model.Jewelry
	err := r.db.WithContext(ctx).
		Where("name = ? AND category = ? AND material = ? AND branch_id = ?", name, category, material, branchID).
		Order("created_at ASC").
		Take(&j).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}
