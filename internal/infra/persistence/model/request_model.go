package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestModel mirrors the 'requests' table that backs the administrator review queue.
// RequestData is stored as JSONB; its keys depend on Type.
type RequestModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type            string         `gorm:"type:varchar(64);not null;index:idx_requests_user_type,priority:2"`
	Status          string         `gorm:"type:varchar(16);not null;index"`
	RequestedBy     uuid.UUID      `gorm:"type:uuid;not null;index:idx_requests_user_type,priority:1"`
	ReviewedBy      *uuid.UUID     `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason string         `gorm:"type:text"`
	ReviewNote      string         `gorm:"type:text"`
	RequestData     map[string]any `gorm:"type:jsonb;serializer:json"`
	Priority        string         `gorm:"type:varchar(16);not null;default:'normal'"`
	Notes           string         `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}
