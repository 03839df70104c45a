package repo

import (
	"JewelryStore/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// TransferFilter — фильтр списка заявок. BranchID совпадает с филиалом-источником
// или филиалом-получателем.
type TransferFilter struct {
	Status   string
	BranchID string
}

// TransferRepository — журнал заявок на перемещение.
type TransferRepository interface {
	// Create сохраняет заявку всегда в статусе pending.
	Create(ctx context.Context, t *model.TransferRequest) error
	GetByID(ctx context.Context, id string) (*model.TransferRequest, error)
	List(ctx context.Context, f TransferFilter) ([]model.TransferRequest, error)

	// UpdateStatus — compare-and-set по status = pending. Если заявка уже обработана,
	// возвращает ErrNotPending; если её нет — gorm.ErrRecordNotFound.
	UpdateStatus(ctx context.Context, id, status, responderID string, at time.Time) error
}

type transferRepo struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepo{db: db}
}

func (r *transferRepo) Create(ctx context.Context, t *model.TransferRequest) error {
	t.Status = model.TransferPending
	t.RespondedBy = nil
	t.RespondedAt = nil
	if t.RequestedAt.IsZero() {
		t.RequestedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transferRepo) GetByID(ctx context.Context, id string) (*model.TransferRequest, error) {
	if !validID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var t model.TransferRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transferRepo) List(ctx context.Context, f TransferFilter) ([]model.TransferRequest, error) {
	q := r.db.WithContext(ctx).Model(&model.TransferRequest{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BranchID != "" {
		if !validID(f.BranchID) {
			return []model.TransferRequest{}, nil
		}
		q = q.Where("from_branch_id = ? OR to_branch_id = ?", f.BranchID, f.BranchID)
	}

	var out []model.TransferRequest
	err := q.Order("requested_at DESC").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *transferRepo) UpdateStatus(ctx context.Context, id, status, responderID string, at time.Time) error {
	if !validID(id) {
		return gorm.ErrRecordNotFound
	}
	res := r.db.WithContext(ctx).Model(&model.TransferRequest{}).
		Where("id = ? AND status = ?", id, model.TransferPending).
		Updates(map[string]any{
			"status":       status,
			"responded_by": responderID,
			"responded_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var n int64
	if err := r.db.WithContext(ctx).Model(&model.TransferRequest{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrNotPending
}
