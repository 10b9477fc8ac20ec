package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel maps the courses table.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:160;not null" json:"name"`
	Slug        string    `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Levels []LevelModel `gorm:"foreignKey:CourseID" json:"levels,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// LevelModel maps the levels table; levels are ordered within a course.
type LevelModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID      uuid.UUID `gorm:"type:uuid;index;not null" json:"course_id"`
	Name          string    `gorm:"size:120;not null" json:"name"`
	Position      int       `gorm:"not null;default:1" json:"position"`
	DurationHours int       `gorm:"not null;default:0" json:"duration_hours"`
	Price         float64   `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LevelModel) TableName() string {
	return "levels"
}

func (m *LevelModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
