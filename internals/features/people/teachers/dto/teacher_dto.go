package dto

import (
	"github.com/google/uuid"

	"tecnischool_backend/internals/features/people/teachers/model"
)

type CreateTeacherRequest struct {
	UserName       string `json:"user_name" validate:"required,min=3,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,max=120"`
	DocumentNumber string `json:"document_number" validate:"required,max=30"`
	Specialty      string `json:"specialty" validate:"omitempty,max=120"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
}

type UpdateTeacherRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=120"`
	Specialty *string `json:"specialty" validate:"omitempty,max=120"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
}

type TeacherResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`
	Specialty      string    `json:"specialty"`
	Phone          string    `json:"phone"`
	PhotoURL       string    `json:"photo_url"`
	IsActive       bool      `json:"is_active"`
}

func FromTeacherModel(t *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		UserName:       t.User.UserName,
		Email:          t.User.Email,
		FullName:       t.User.FullName,
		DocumentNumber: t.DocumentNumber,
		Specialty:      t.Specialty,
		Phone:          t.Phone,
		PhotoURL:       t.PhotoURL,
		IsActive:       t.User.IsActive,
	}
}

func FromTeacherModels(teachers []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, FromTeacherModel(&teachers[i]))
	}
	return out
}
