package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/helpers/dbtime"
)

// AttendanceStatus enumerates per-day attendance states.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusExcused AttendanceStatus = "EXCUSED"
)

// Valid reports whether s is a supported status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	default:
		return false
	}
}

// AttendanceModel maps the attendances table. At most one row per
// (enrollment, date) — the upsert key.
type AttendanceModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	EnrollmentID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_enrollment_date" json:"enrollment_id"`
	Date         time.Time        `gorm:"type:date;not null;uniqueIndex:uq_attendance_enrollment_date" json:"date"`
	Status       AttendanceStatus `gorm:"size:10;not null" json:"status"`
	ArrivalTime  *dbtime.Tod      `gorm:"type:time" json:"arrival_time,omitempty"`
	Notes        string           `gorm:"size:255" json:"notes"`
	RecordedBy   uuid.UUID        `gorm:"type:uuid;not null" json:"recorded_by"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Enrollment enrollmentModel.EnrollmentModel `gorm:"foreignKey:EnrollmentID" json:"-"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
