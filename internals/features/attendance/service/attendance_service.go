package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/features/attendance/dto"
	"tecnischool_backend/internals/features/attendance/model"
	"tecnischool_backend/internals/helpers/dbtime"
)

// GetDay lists every ACTIVE enrollment of the group ordered by student
// surname, each with its attendance state for the date (nil = not taken).
func GetDay(db *gorm.DB, groupID uuid.UUID, date time.Time) ([]dto.DayEntry, error) {
	enrollments, err := activeEnrollments(db, groupID)
	if err != nil {
		return nil, err
	}

	day := normalizeDate(date)
	entries := make([]dto.DayEntry, 0, len(enrollments))
	for i := range enrollments {
		e := &enrollments[i]
		entry := dto.DayEntry{
			EnrollmentID: e.ID,
			StudentID:    e.StudentID,
			StudentName:  e.Student.User.FullName,
		}

		// at most one row per (enrollment, date)
		var a model.AttendanceModel
		err := db.Where("enrollment_id = ? AND date = ?", e.ID, day).First(&a).Error
		switch {
		case err == nil:
			entry.Status = dto.StatusPtr(a.Status)
			entry.Notes = a.Notes
			if a.ArrivalTime != nil {
				s := a.ArrivalTime.Format("15:04:05")
				entry.ArrivalTime = &s
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// not yet taken
		default:
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// SaveBatch validates the whole batch first, then upserts every record
// keyed by (enrollment_id, date) inside one transaction: all or nothing.
func SaveBatch(db *gorm.DB, groupID uuid.UUID, date time.Time, records []dto.BatchRecord, recordedBy uuid.UUID) error {
	day := normalizeDate(date)

	enrollments, err := activeEnrollments(db, groupID)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]struct{}, len(enrollments))
	for _, e := range enrollments {
		known[e.ID] = struct{}{}
	}

	rows := make([]model.AttendanceModel, 0, len(records))
	for _, r := range records {
		status := model.AttendanceStatus(r.Status)
		if !status.Valid() {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Invalid attendance status %q", r.Status))
		}
		if _, ok := known[r.EnrollmentID]; !ok {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Enrollment %s is not an active member of this group", r.EnrollmentID))
		}

		row := model.AttendanceModel{
			EnrollmentID: r.EnrollmentID,
			Date:         day,
			Status:       status,
			Notes:        r.Notes,
			RecordedBy:   recordedBy,
		}
		if r.ArrivalTime != "" {
			tod, err := dbtime.Parse(r.ArrivalTime)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Invalid arrival_time %q, expected HH:MM", r.ArrivalTime))
			}
			row.ArrivalTime = &tod
		}
		rows = append(rows, row)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "enrollment_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"status":       rows[i].Status,
					"notes":        rows[i].Notes,
					"arrival_time": rows[i].ArrivalTime,
					"recorded_by":  rows[i].RecordedBy,
				}),
			}).Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Stats aggregates per-student counters over [start, end]. total_classes is
// the number of distinct attendance dates recorded for the group in range;
// percentage = (present+late)/total_classes*100 to one decimal, "0.0" when
// no classes were held.
func Stats(db *gorm.DB, groupID uuid.UUID, start, end time.Time) (*dto.StatsResponse, error) {
	startDay, endDay := normalizeDate(start), normalizeDate(end)

	var totalClasses int64
	if err := db.Model(&model.AttendanceModel{}).
		Joins("JOIN enrollments ON enrollments.id = attendances.enrollment_id").
		Where("enrollments.group_id = ? AND attendances.date BETWEEN ? AND ?", groupID, startDay, endDay).
		Distinct("attendances.date").
		Count(&totalClasses).Error; err != nil {
		return nil, err
	}

	enrollments, err := activeEnrollments(db, groupID)
	if err != nil {
		return nil, err
	}

	out := &dto.StatsResponse{GroupID: groupID, TotalClasses: totalClasses}
	for i := range enrollments {
		e := &enrollments[i]
		entry := dto.StatsEntry{
			EnrollmentID: e.ID,
			StudentID:    e.StudentID,
			StudentName:  e.Student.User.FullName,
		}

		type statusCount struct {
			Status model.AttendanceStatus
			N      int64
		}
		var counts []statusCount
		if err := db.Model(&model.AttendanceModel{}).
			Select("status, COUNT(*) as n").
			Where("enrollment_id = ? AND date BETWEEN ? AND ?", e.ID, startDay, endDay).
			Group("status").
			Scan(&counts).Error; err != nil {
			return nil, err
		}
		for _, sc := range counts {
			switch sc.Status {
			case model.StatusPresent:
				entry.Present = sc.N
			case model.StatusAbsent:
				entry.Absent = sc.N
			case model.StatusLate:
				entry.Late = sc.N
			case model.StatusExcused:
				entry.Excused = sc.N
			}
		}

		entry.Percentage = attendancePercent(entry.Present+entry.Late, totalClasses)
		out.Students = append(out.Students, entry)
	}
	return out, nil
}

func attendancePercent(attended, totalClasses int64) string {
	if totalClasses == 0 {
		return "0.0"
	}
	pct := float64(attended) / float64(totalClasses) * 100
	return fmt.Sprintf("%.1f", math.Round(pct*10)/10)
}

func activeEnrollments(db *gorm.DB, groupID uuid.UUID) ([]enrollmentModel.EnrollmentModel, error) {
	var enrollments []enrollmentModel.EnrollmentModel
	err := db.
		Joins("JOIN students ON students.id = enrollments.student_id").
		Joins("JOIN users ON users.id = students.user_id").
		Where("enrollments.group_id = ? AND enrollments.status = ?", groupID, enrollmentModel.StatusActive).
		Order("users.full_name ASC").
		Preload("Student").Preload("Student.User").
		Find(&enrollments).Error
	return enrollments, err
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
