package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы заявки на перемещение. pending — начальный, approved и rejected — конечные.
const (
	TransferPending  = "pending"
	TransferApproved = "approved"
	TransferRejected = "rejected"
)

// TransferRequest — заявка на перемещение количества позиции между филиалами.
// FromBranchID фиксируется при создании и не пересчитывается.
type TransferRequest struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	JewelryID    string     `gorm:"type:uuid;not null;index" json:"jewelryId"`
	FromBranchID string     `gorm:"type:uuid;not null;index" json:"fromBranchId"`
	ToBranchID   string     `gorm:"type:uuid;not null;index" json:"toBranchId"`
	Quantity     int        `gorm:"not null" json:"quantity"`
	Status       string     `gorm:"not null;default:pending;index" json:"status"`
	RequestedBy  string     `gorm:"type:uuid;not null" json:"requestedBy"`
	RequestedAt  time.Time  `gorm:"not null" json:"requestedAt"`
	RespondedBy  *string    `gorm:"type:uuid" json:"respondedBy"`
	RespondedAt  *time.Time `json:"respondedAt"`
}

func (t *TransferRequest) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IsTerminal reports whether the request has already been answered.
func (t *TransferRequest) IsTerminal() bool {
	return t.Status != TransferPending
}

// IsDecision reports whether status is a valid response to a pending request.
func IsDecision(status string) bool {
	return status == TransferApproved || status == TransferRejected
}
