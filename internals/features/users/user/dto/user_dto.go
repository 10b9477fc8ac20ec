package dto

import (
	"time"

	"github.com/google/uuid"

	"tecnischool_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	UserName string   `json:"user_name" validate:"required,min=3,max=50"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	FullName string   `json:"full_name" validate:"required,max=120"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=ADMIN TEACHER STUDENT GUARDIAN"`
}

type UpdateUserRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=120"`
	IsActive *bool   `json:"is_active"`
}

type ReplaceRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=ADMIN TEACHER STUDENT GUARDIAN"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		Roles:     u.RoleNames(),
		CreatedAt: u.CreatedAt,
	}
}

func FromUserModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUserModel(&users[i]))
	}
	return out
}
