package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	studentModel "tecnischool_backend/internals/features/people/students/model"
)

// Enrollment lifecycle.
const (
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// EnrollmentModel links a student to a group. One row per (student, group).
type EnrollmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_group" json:"student_id"`
	GroupID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_group;index" json:"group_id"`
	Status      string    `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	AgreedPrice float64   `gorm:"type:numeric(12,2);not null;default:0" json:"agreed_price"`
	EnrolledAt  time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Student studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Group   groupModel.GroupModel     `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (e *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = StatusActive
	}
	return nil
}
