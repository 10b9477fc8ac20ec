package dto

import (
	"github.com/google/uuid"

	"tecnischool_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	Name        string `json:"name" validate:"required,max=160"`
	Description string `json:"description"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=160"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreateLevelRequest struct {
	Name          string  `json:"name" validate:"required,max=120"`
	Position      int     `json:"position" validate:"required,min=1"`
	DurationHours int     `json:"duration_hours" validate:"omitempty,min=0"`
	Price         float64 `json:"price" validate:"omitempty,min=0"`
}

type UpdateLevelRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=120"`
	Position      *int     `json:"position" validate:"omitempty,min=1"`
	DurationHours *int     `json:"duration_hours" validate:"omitempty,min=0"`
	Price         *float64 `json:"price" validate:"omitempty,min=0"`
}

type LevelResponse struct {
	ID            uuid.UUID `json:"id"`
	CourseID      uuid.UUID `json:"course_id"`
	Name          string    `json:"name"`
	Position      int       `json:"position"`
	DurationHours int       `json:"duration_hours"`
	Price         float64   `json:"price"`
}

type CourseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	Levels      []LevelResponse `json:"levels,omitempty"`
}

func FromLevelModel(l *model.LevelModel) LevelResponse {
	return LevelResponse{
		ID:            l.ID,
		CourseID:      l.CourseID,
		Name:          l.Name,
		Position:      l.Position,
		DurationHours: l.DurationHours,
		Price:         l.Price,
	}
}

func FromCourseModel(cm *model.CourseModel) CourseResponse {
	levels := make([]LevelResponse, 0, len(cm.Levels))
	for i := range cm.Levels {
		levels = append(levels, FromLevelModel(&cm.Levels[i]))
	}
	return CourseResponse{
		ID:          cm.ID,
		Name:        cm.Name,
		Slug:        cm.Slug,
		Description: cm.Description,
		IsActive:    cm.IsActive,
		Levels:      levels,
	}
}

func FromCourseModels(courses []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, FromCourseModel(&courses[i]))
	}
	return out
}
