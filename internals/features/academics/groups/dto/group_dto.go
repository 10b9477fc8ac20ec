package dto

import (
	"time"

	"github.com/google/uuid"

	"tecnischool_backend/internals/features/academics/groups/model"
	"tecnischool_backend/internals/helpers/dbtime"
)

type CreateGroupRequest struct {
	LevelID     uuid.UUID  `json:"level_id" validate:"required"`
	TeacherID   *uuid.UUID `json:"teacher_id"`
	ClassroomID *uuid.UUID `json:"classroom_id"`
	Code        string     `json:"code" validate:"required,max=30"`
	Capacity    int        `json:"capacity" validate:"required,min=1"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     time.Time  `json:"end_date" validate:"required"`
	Days        []string   `json:"days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	StartTime   string     `json:"start_time" validate:"omitempty"`
	EndTime     string     `json:"end_time" validate:"omitempty"`
}

type UpdateGroupRequest struct {
	TeacherID   *uuid.UUID `json:"teacher_id"`
	ClassroomID *uuid.UUID `json:"classroom_id"`
	Capacity    *int       `json:"capacity" validate:"omitempty,min=1"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Days        []string   `json:"days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	StartTime   *string    `json:"start_time"`
	EndTime     *string    `json:"end_time"`
}

type GroupResponse struct {
	ID          uuid.UUID  `json:"id"`
	LevelID     uuid.UUID  `json:"level_id"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty"`
	TeacherName string     `json:"teacher_name,omitempty"`
	ClassroomID *uuid.UUID `json:"classroom_id,omitempty"`
	Code        string     `json:"code"`
	Capacity    int        `json:"capacity"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Days        []string   `json:"days"`
	StartTime   dbtime.Tod `json:"start_time"`
	EndTime     dbtime.Tod `json:"end_time"`
	Status      string     `json:"status"`
}

func FromGroupModel(g *model.GroupModel) GroupResponse {
	resp := GroupResponse{
		ID:          g.ID,
		LevelID:     g.LevelID,
		TeacherID:   g.TeacherID,
		ClassroomID: g.ClassroomID,
		Code:        g.Code,
		Capacity:    g.Capacity,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
		Days:        g.Days,
		StartTime:   g.StartTime,
		EndTime:     g.EndTime,
		Status:      g.Status,
	}
	if g.Teacher != nil {
		resp.TeacherName = g.Teacher.User.FullName
	}
	return resp
}

func FromGroupModels(groups []model.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, FromGroupModel(&groups[i]))
	}
	return out
}
