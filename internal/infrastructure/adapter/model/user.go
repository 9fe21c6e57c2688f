package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	Username     string    `gorm:"primaryKey;size:64"`
	PasswordHash string    `gorm:"not null;size:255"`
	CreatedAt    time.Time `gorm:"not null"`

	// Puts fk_users_transactions on transactions(username); users are never deleted
	Transactions []Transaction `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
