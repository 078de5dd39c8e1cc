package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string     `gorm:"type:varchar(255);unique;not null"`
	Name            string     `gorm:"type:varchar(100);not null"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	Phone           string     `gorm:"type:varchar(50)"`
	Address         string     `gorm:"type:text"`
	Role            string     `gorm:"type:varchar(32);not null;index"`
	IsEmailVerified bool       `gorm:"not null;default:false"`
	IsPhoneVerified bool       `gorm:"not null;default:false"`
	LastLoginAt     *time.Time
	LoginAttempts   int `gorm:"not null;default:0"`
	LockedUntil     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	StoreManagerProfile *StoreManagerProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StoreManagerProfileModel mirrors the 'store_manager_profiles' table. UserID references users.id (UUID).
type StoreManagerProfileModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	IsApproved   bool       `gorm:"not null;default:false"`
	ApprovedAt   *time.Time
	ApprovedBy   *uuid.UUID `gorm:"type:uuid"`
	StoreName    string     `gorm:"type:varchar(100);not null"`
	StoreAddress string     `gorm:"type:text;not null"`
	Notes        string     `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreManagerProfileModel) TableName() string {
	return "store_manager_profiles"
}
