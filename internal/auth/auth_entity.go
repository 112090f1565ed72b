package auth

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type Account struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string     `gorm:"column:username;type:varchar(60);not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string     `gorm:"column:role;type:varchar(20);not null;default:'staff'"`
	EmployeeID   *uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	Active       bool       `gorm:"column:active;not null;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
