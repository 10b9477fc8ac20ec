package dto

import (
	"github.com/google/uuid"

	"tecnischool_backend/internals/features/people/guardians/model"
)

type CreateGuardianRequest struct {
	UserName       string `json:"user_name" validate:"required,min=3,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required,max=120"`
	DocumentNumber string `json:"document_number" validate:"required,max=30"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Occupation     string `json:"occupation" validate:"omitempty,max=120"`
}

type UpdateGuardianRequest struct {
	FullName   *string `json:"full_name" validate:"omitempty,max=120"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Occupation *string `json:"occupation" validate:"omitempty,max=120"`
}

type GuardianResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`
	Phone          string    `json:"phone"`
	Occupation     string    `json:"occupation"`
	IsActive       bool      `json:"is_active"`
}

func FromGuardianModel(g *model.GuardianModel) GuardianResponse {
	return GuardianResponse{
		ID:             g.ID,
		UserID:         g.UserID,
		Email:          g.User.Email,
		FullName:       g.User.FullName,
		DocumentNumber: g.DocumentNumber,
		Phone:          g.Phone,
		Occupation:     g.Occupation,
		IsActive:       g.User.IsActive,
	}
}

func FromGuardianModels(guardians []model.GuardianModel) []GuardianResponse {
	out := make([]GuardianResponse, 0, len(guardians))
	for i := range guardians {
		out = append(out, FromGuardianModel(&guardians[i]))
	}
	return out
}
