package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification types used across the app.
const (
	TypeInfo            = "INFO"
	TypeGradesSubmitted = "GRADES_SUBMITTED"
	TypeGroupClosed     = "GROUP_CLOSED"
	TypeEnrollment      = "ENROLLMENT"
)

// NotificationModel maps the notifications table. Addressed to one user.
type NotificationModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Title     string         `gorm:"size:160;not null" json:"title"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Type      string         `gorm:"size:40;not null;default:'INFO'" json:"type"`
	IsRead    bool           `gorm:"not null;default:false;index" json:"is_read"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Type == "" {
		n.Type = TypeInfo
	}
	return nil
}
