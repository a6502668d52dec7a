package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null;default:employee"`
	EmployeeID   string   `gorm:"size:50;index"` // uniqueness enforced at the handler, rows may carry ""
	Address      string   `gorm:"size:255"`
	Phone        string   `gorm:"size:50"`
	Picture      string   `gorm:"size:255"` // relative URL under /uploads
	LastActive   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
