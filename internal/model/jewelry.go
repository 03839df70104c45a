package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Jewelry — позиция ювелирного склада, принадлежащая ровно одному филиалу.
type Jewelry struct {
	ID          string              `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string              `gorm:"not null;index:idx_jewelry_match" json:"name"`
	Category    string              `gorm:"not null;index:idx_jewelry_match" json:"category"`
	Material    string              `gorm:"not null;index:idx_jewelry_match" json:"material"`
	Weight      decimal.NullDecimal `gorm:"type:numeric" json:"weight"`
	Price       decimal.Decimal     `gorm:"type:numeric;not null" json:"price"`
	Quantity    int                 `gorm:"not null" json:"quantity"`
	Description string              `json:"description,omitempty"`
	BranchID    string              `gorm:"type:uuid;not null;index:idx_jewelry_match" json:"branchId"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName оставляет имя таблицы в единственном числе (jewelries → jewelry).
func (Jewelry) TableName() string { return "jewelry" }

func (j *Jewelry) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// CopyTo returns a copy of the item placed at another branch with the given quantity.
// Identity and timestamps are left for the store to assign.
func (j *Jewelry) CopyTo(branchID string, quantity int) *Jewelry {
	return &Jewelry{
		Name:        j.Name,
		Category:    j.Category,
		Material:    j.Material,
		Weight:      j.Weight,
		Price:       j.Price,
		Quantity:    quantity,
		Description: j.Description,
		BranchID:    branchID,
		ImageURL:    j.ImageURL,
	}
}
