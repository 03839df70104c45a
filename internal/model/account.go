package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Роли учётных записей.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Account — учётная запись сотрудника или администратора.
type Account struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null" json:"role"`
	BranchID     *string   `gorm:"type:uuid;index" json:"branchId"` // слабая ссылка на branches.id
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate выдаёт идентификатор, если он не задан.
func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// IsValidRole checks the role against the known set.
func IsValidRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}
