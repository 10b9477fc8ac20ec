package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "tecnischool_backend/internals/features/users/user/model"
)

// GuardianModel maps the guardians table (1:1 with users).
type GuardianModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DocumentNumber string    `gorm:"size:30;uniqueIndex;not null" json:"document_number"`
	Phone          string    `gorm:"size:30" json:"phone"`
	Occupation     string    `gorm:"size:120" json:"occupation"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User userModel.UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (GuardianModel) TableName() string {
	return "guardians"
}

func (g *GuardianModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
