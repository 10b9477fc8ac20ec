package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	teacherModel "tecnischool_backend/internals/features/people/teachers/model"
	"tecnischool_backend/internals/helpers/dbtime"
)

// Group lifecycle. Transitions only move forward, never skip, never reverse.
const (
	StatusActive          = "ACTIVE"
	StatusGradesSubmitted = "GRADES_SUBMITTED"
	StatusCompleted       = "COMPLETED"
)

// GroupModel maps the groups table: a scheduled offering of a level.
type GroupModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"level_id"`
	TeacherID   *uuid.UUID     `gorm:"type:uuid;index" json:"teacher_id,omitempty"`
	ClassroomID *uuid.UUID     `gorm:"type:uuid;index" json:"classroom_id,omitempty"`
	Code        string         `gorm:"size:30;uniqueIndex;not null" json:"code"`
	Capacity    int            `gorm:"not null;default:20" json:"capacity"`
	StartDate   time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time      `gorm:"type:date;not null" json:"end_date"`
	Days        pq.StringArray `gorm:"type:text[]" json:"days"`
	StartTime   dbtime.Tod     `gorm:"type:time" json:"start_time"`
	EndTime     dbtime.Tod     `gorm:"type:time" json:"end_time"`
	Status      string         `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	Level   courseModel.LevelModel     `gorm:"foreignKey:LevelID" json:"level,omitempty"`
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (GroupModel) TableName() string {
	return "groups"
}

func (g *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = StatusActive
	}
	return nil
}

// CanTransitionTo enforces the forward-only lifecycle.
func (g *GroupModel) CanTransitionTo(next string) bool {
	switch g.Status {
	case StatusActive:
		return next == StatusGradesSubmitted || next == StatusCompleted
	case StatusGradesSubmitted:
		return next == StatusCompleted
	default:
		return false
	}
}
