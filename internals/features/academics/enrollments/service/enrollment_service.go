package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	"tecnischool_backend/internals/features/academics/enrollments/model"
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	studentModel "tecnischool_backend/internals/features/people/students/model"
	schoolModel "tecnischool_backend/internals/features/schools/model"
)

// Enroll registers a student into a group. The agreed price starts from the
// level price and applies the best active agreement discount of the
// student's partner school, if any.
func Enroll(db *gorm.DB, studentID, groupID uuid.UUID) (*model.EnrollmentModel, error) {
	var group groupModel.GroupModel
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, err
	}
	if group.Status != groupModel.StatusActive {
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Enrollment is closed: group is %s", group.Status))
	}

	var student studentModel.StudentModel
	if err := db.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}

	var existing int64
	if err := db.Model(&model.EnrollmentModel{}).
		Where("student_id = ? AND group_id = ?", studentID, groupID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Student is already enrolled in this group")
	}

	var occupied int64
	if err := db.Model(&model.EnrollmentModel{}).
		Where("group_id = ? AND status = ?", groupID, model.StatusActive).
		Count(&occupied).Error; err != nil {
		return nil, err
	}
	if occupied >= int64(group.Capacity) {
		return nil, fiber.NewError(fiber.StatusConflict, "Group is full")
	}

	price, err := agreedPrice(db, &group, &student)
	if err != nil {
		return nil, err
	}

	enrollment := model.EnrollmentModel{
		StudentID:   studentID,
		GroupID:     groupID,
		Status:      model.StatusActive,
		AgreedPrice: price,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func agreedPrice(db *gorm.DB, group *groupModel.GroupModel, student *studentModel.StudentModel) (float64, error) {
	var level courseModel.LevelModel
	if err := db.First(&level, "id = ?", group.LevelID).Error; err != nil {
		return 0, err
	}
	price := level.Price

	if student.SchoolID == nil {
		return price, nil
	}

	today := time.Now()
	var discount float64
	err := db.Model(&schoolModel.AgreementModel{}).
		Joins("JOIN school_agreements sa ON sa.agreement_id = agreements.id").
		Where("sa.school_id = ? AND agreements.is_active = ?", *student.SchoolID, true).
		Where("(agreements.valid_from IS NULL OR agreements.valid_from <= ?)", today).
		Where("(agreements.valid_until IS NULL OR agreements.valid_until >= ?)", today).
		Select("COALESCE(MAX(agreements.discount_percent), 0)").
		Scan(&discount).Error
	if err != nil {
		return 0, err
	}

	if discount > 0 {
		price = math.Round(price*(1-discount/100)*100) / 100
	}
	return price, nil
}

// Cancel moves an ACTIVE enrollment to CANCELLED.
func Cancel(db *gorm.DB, enrollmentID uuid.UUID) (*model.EnrollmentModel, error) {
	var enrollment model.EnrollmentModel
	if err := db.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return nil, err
	}
	if enrollment.Status != model.StatusActive {
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Enrollment cannot be cancelled from status %s", enrollment.Status))
	}

	if err := db.Model(&enrollment).Update("status", model.StatusCancelled).Error; err != nil {
		return nil, err
	}
	enrollment.Status = model.StatusCancelled
	return &enrollment, nil
}
