package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "tecnischool_backend/internals/features/users/user/model"
)

// TeacherModel maps the teachers table (1:1 with users).
type TeacherModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DocumentNumber string    `gorm:"size:30;uniqueIndex;not null" json:"document_number"`
	Specialty      string    `gorm:"size:120" json:"specialty"`
	Phone          string    `gorm:"size:30" json:"phone"`
	PhotoURL       string    `gorm:"size:500" json:"photo_url"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
