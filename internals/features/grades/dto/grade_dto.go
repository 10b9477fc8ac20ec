package dto

import "github.com/google/uuid"

type BatchGradeRecord struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=100"`
	Score        float64   `json:"score" validate:"gte=0,lte=100"`
	Comment      string    `json:"comment" validate:"omitempty,max=500"`
}

type SaveBatchRequest struct {
	GroupID uuid.UUID          `json:"group_id" validate:"required"`
	Period  int                `json:"period" validate:"required,oneof=1 2"`
	Records []BatchGradeRecord `json:"records" validate:"required,min=1,dive"`
}
