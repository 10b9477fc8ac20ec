package dto

import (
	"time"

	"github.com/google/uuid"

	"tecnischool_backend/internals/features/academics/enrollments/model"
)

type CreateEnrollmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
}

type EnrollmentResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	GroupID     uuid.UUID `json:"group_id"`
	GroupCode   string    `json:"group_code,omitempty"`
	Status      string    `json:"status"`
	AgreedPrice float64   `json:"agreed_price"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

func FromEnrollmentModel(e *model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		StudentID:   e.StudentID,
		StudentName: e.Student.User.FullName,
		GroupID:     e.GroupID,
		GroupCode:   e.Group.Code,
		Status:      e.Status,
		AgreedPrice: e.AgreedPrice,
		EnrolledAt:  e.EnrolledAt,
	}
}

func FromEnrollmentModels(enrollments []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, FromEnrollmentModel(&enrollments[i]))
	}
	return out
}
