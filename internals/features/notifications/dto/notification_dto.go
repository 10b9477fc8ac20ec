package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SendNotificationRequest struct {
	UserIDs []uuid.UUID    `json:"user_ids" validate:"required,min=1"`
	Title   string         `json:"title" validate:"required,max=200"`
	Message string         `json:"message" validate:"required,max=1000"`
	Type    string         `json:"type" validate:"omitempty,max=50"`
	Payload datatypes.JSON `json:"payload" validate:"omitempty"`
}

type BroadcastNotificationRequest struct {
	Role    string         `json:"role" validate:"required,oneof=ADMIN TEACHER STUDENT GUARDIAN"`
	Title   string         `json:"title" validate:"required,max=200"`
	Message string         `json:"message" validate:"required,max=1000"`
	Type    string         `json:"type" validate:"omitempty,max=50"`
	Payload datatypes.JSON `json:"payload" validate:"omitempty"`
}
