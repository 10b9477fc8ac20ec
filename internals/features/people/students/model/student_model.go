package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "tecnischool_backend/internals/features/users/user/model"
)

// StudentModel maps the students table (1:1 with users).
type StudentModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DocumentNumber string     `gorm:"size:30;uniqueIndex;not null" json:"document_number"`
	BirthDate      *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Phone          string     `gorm:"size:30" json:"phone"`
	Address        string     `gorm:"size:255" json:"address"`
	PhotoURL       string     `gorm:"size:500" json:"photo_url"`
	SchoolID       *uuid.UUID `gorm:"type:uuid;index" json:"school_id,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StudentGuardianModel links students to guardians (many-to-many).
type StudentGuardianModel struct {
	StudentID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`
	GuardianID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"guardian_id"`
	Relationship string    `gorm:"size:40;not null" json:"relationship"`
}

func (StudentGuardianModel) TableName() string {
	return "student_guardians"
}
