package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel maps the roles table (ADMIN, TEACHER, STUDENT, GUARDIAN).
type RoleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:30;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (RoleModel) TableName() string {
	return "roles"
}

func (r *RoleModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// UserRoleModel is the explicit join row between users and roles.
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
