package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
)

type GradeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EnrollmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grades_enrollment_period_name" json:"enrollment_id"`
	Period       int       `gorm:"not null;uniqueIndex:uq_grades_enrollment_period_name" json:"period"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_grades_enrollment_period_name" json:"name"`
	Score        float64   `gorm:"type:numeric(5,2);not null" json:"score"`
	Comment      string    `gorm:"type:text" json:"comment,omitempty"`
	GradedBy     uuid.UUID `gorm:"type:uuid;not null" json:"graded_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Enrollment *enrollmentModel.EnrollmentModel `gorm:"foreignKey:EnrollmentID" json:"enrollment,omitempty"`
}

func (GradeModel) TableName() string {
	return "grades"
}

func (g *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
