package types

import (
	"context"
	"time"
)

// Status is the lifecycle status shared by all persisted records.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPublished, StatusArchived, StatusDeleted:
		return true
	}
	return false
}

// BaseModel holds the audit fields embedded in every domain model.
type BaseModel struct {
	Status    Status    `json:"status" gorm:"column:status;default:'published'"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
	CreatedBy string    `json:"created_by" gorm:"column:created_by"`
	UpdatedBy string    `json:"updated_by" gorm:"column:updated_by"`
}

// GetDefaultBaseModel builds a BaseModel for a newly created record using
// the acting user from the context.
func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	userID := GetUserID(ctx)
	return BaseModel{
		Status:    StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
}

// Metadata is a free-form string map attached to catalog records.
type Metadata map[string]string
