package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Branch — филиал магазина со своим складом.
type Branch struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Location      string    `gorm:"not null" json:"location"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	ManagerID     *string   `gorm:"type:uuid" json:"managerId"` // ссылка на accounts.id
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Branch) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
