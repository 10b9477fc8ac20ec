package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/features/grades/dto"
	"tecnischool_backend/internals/features/grades/model"
	settingService "tecnischool_backend/internals/features/settings/service"
)

// SaveBatch upserts grade items for enrollments of one group. Every record
// is validated before anything is written; the writes run in one
// transaction so a failing record persists nothing.
func SaveBatch(db *gorm.DB, groupID uuid.UUID, period int, records []dto.BatchGradeRecord, gradedBy uuid.UUID) error {
	open, err := settingService.GradesOpen(db, time.Now())
	if err != nil {
		return err
	}
	if !open {
		return fiber.NewError(fiber.StatusConflict, "Grade submission is currently closed")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := db.Select("id").Where("group_id = ?", groupID).Find(&enrollments).Error; err != nil {
		return err
	}
	members := make(map[uuid.UUID]bool, len(enrollments))
	for _, e := range enrollments {
		members[e.ID] = true
	}

	grades := make([]model.GradeModel, 0, len(records))
	for i, rec := range records {
		if !members[rec.EnrollmentID] {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Record %d: enrollment does not belong to this group", i+1))
		}
		grades = append(grades, model.GradeModel{
			EnrollmentID: rec.EnrollmentID,
			Period:       period,
			Name:         rec.Name,
			Score:        rec.Score,
			Comment:      rec.Comment,
			GradedBy:     gradedBy,
		})
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range grades {
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "enrollment_id"}, {Name: "period"}, {Name: "name"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"score", "comment", "graded_by", "updated_at",
				}),
			}).Create(&grades[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByEnrollment returns all grade items of one enrollment, newest period
// first, items alphabetical within a period.
func ListByEnrollment(db *gorm.DB, enrollmentID uuid.UUID) ([]model.GradeModel, error) {
	var enrollment enrollmentModel.EnrollmentModel
	if err := db.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return nil, err
	}

	var grades []model.GradeModel
	err := db.Where("enrollment_id = ?", enrollmentID).
		Order("period DESC, name ASC").
		Find(&grades).Error
	return grades, err
}

// ListByGroup returns every grade item of a group, joined to its enrollment.
func ListByGroup(db *gorm.DB, groupID uuid.UUID) ([]model.GradeModel, error) {
	var grades []model.GradeModel
	err := db.Joins("JOIN enrollments ON enrollments.id = grades.enrollment_id").
		Where("enrollments.group_id = ?", groupID).
		Preload("Enrollment").
		Order("grades.period DESC, grades.name ASC").
		Find(&grades).Error
	return grades, err
}
