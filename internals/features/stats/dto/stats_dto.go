package dto

import "github.com/google/uuid"

type CourseRevenueEntry struct {
	CourseID     uuid.UUID `json:"course_id"`
	CourseName   string    `json:"course_name"`
	Revenue      float64   `json:"revenue"`
	StudentCount int64     `json:"student_count"`
}
