package dto

import (
	"time"

	"github.com/google/uuid"

	"tecnischool_backend/internals/features/people/students/model"
)

type CreateStudentRequest struct {
	UserName       string     `json:"user_name" validate:"required,min=3,max=50"`
	Email          string     `json:"email" validate:"required,email"`
	Password       string     `json:"password" validate:"required,min=8"`
	FullName       string     `json:"full_name" validate:"required,max=120"`
	DocumentNumber string     `json:"document_number" validate:"required,max=30"`
	BirthDate      *time.Time `json:"birth_date"`
	Phone          string     `json:"phone" validate:"omitempty,max=30"`
	Address        string     `json:"address" validate:"omitempty,max=255"`
	SchoolID       *uuid.UUID `json:"school_id"`
}

type UpdateStudentRequest struct {
	FullName  *string    `json:"full_name" validate:"omitempty,max=120"`
	BirthDate *time.Time `json:"birth_date"`
	Phone     *string    `json:"phone" validate:"omitempty,max=30"`
	Address   *string    `json:"address" validate:"omitempty,max=255"`
	SchoolID  *uuid.UUID `json:"school_id"`
}

type LinkGuardianRequest struct {
	GuardianID   uuid.UUID `json:"guardian_id" validate:"required"`
	Relationship string    `json:"relationship" validate:"required,max=40"`
}

type StudentResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	UserName       string     `json:"user_name"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	DocumentNumber string     `json:"document_number"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	PhotoURL       string     `json:"photo_url"`
	SchoolID       *uuid.UUID `json:"school_id,omitempty"`
	IsActive       bool       `json:"is_active"`
}

func FromStudentModel(s *model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		UserName:       s.User.UserName,
		Email:          s.User.Email,
		FullName:       s.User.FullName,
		DocumentNumber: s.DocumentNumber,
		BirthDate:      s.BirthDate,
		Phone:          s.Phone,
		Address:        s.Address,
		PhotoURL:       s.PhotoURL,
		SchoolID:       s.SchoolID,
		IsActive:       s.User.IsActive,
	}
}

func FromStudentModels(students []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, FromStudentModel(&students[i]))
	}
	return out
}
