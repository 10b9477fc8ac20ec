package dto

import (
	"github.com/google/uuid"

	"tecnischool_backend/internals/features/attendance/model"
)

type BatchRecord struct {
	EnrollmentID uuid.UUID `json:"enrollment_id" validate:"required"`
	Status       string    `json:"status" validate:"required,oneof=PRESENT ABSENT LATE EXCUSED"`
	Notes        string    `json:"notes" validate:"omitempty,max=255"`
	ArrivalTime  string    `json:"arrival_time" validate:"omitempty"`
}

type SaveBatchRequest struct {
	GroupID uuid.UUID     `json:"group_id" validate:"required"`
	Date    string        `json:"date" validate:"required,datetime=2006-01-02"`
	Records []BatchRecord `json:"records" validate:"required,min=1,dive"`
}

// DayEntry reports one student's state for the requested date.
// Status is null when attendance has not been taken yet.
type DayEntry struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	Status       *string   `json:"status"`
	ArrivalTime  *string   `json:"arrival_time,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// StatsEntry aggregates one student's counters over a date range.
type StatsEntry struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	Present      int64     `json:"present"`
	Absent       int64     `json:"absent"`
	Late         int64     `json:"late"`
	Excused      int64     `json:"excused"`
	Percentage   string    `json:"percentage"`
}

type StatsResponse struct {
	GroupID      uuid.UUID    `json:"group_id"`
	TotalClasses int64        `json:"total_classes"`
	Students     []StatsEntry `json:"students"`
}

func StatusPtr(s model.AttendanceStatus) *string {
	v := string(s)
	return &v
}
