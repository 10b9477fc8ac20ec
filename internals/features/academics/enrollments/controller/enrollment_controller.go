package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/academics/enrollments/dto"
	"tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/features/academics/enrollments/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// POST /api/enrollments
func (ec *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	enrollment, err := service.Enroll(ec.DB, req.StudentID, req.GroupID)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Student is already enrolled in this group")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] enroll student %s in group %s: %v", req.StudentID, req.GroupID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}

	if err := ec.DB.Preload("Student").Preload("Student.User").Preload("Group").
		First(enrollment, "id = ?", enrollment.ID).Error; err == nil {
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", dto.FromEnrollmentModel(enrollment))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", dto.FromEnrollmentModel(enrollment))
}

// GET /api/enrollments?group_id=&student_id=&status=
func (ec *EnrollmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ec.DB.Model(&model.EnrollmentModel{})
	if groupID := c.Query("group_id"); groupID != "" {
		q = q.Where("group_id = ?", groupID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var enrollments []model.EnrollmentModel
	if err := q.Preload("Student").Preload("Student.User").Preload("Group").
		Order("enrolled_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	return helper.SuccessList(c, "Enrollments retrieved", dto.FromEnrollmentModels(enrollments),
		helper.BuildPagination(paging, total, len(enrollments)))
}

// GET /api/enrollments/:id
func (ec *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	var enrollment model.EnrollmentModel
	if err := ec.DB.Preload("Student").Preload("Student.User").Preload("Group").
		First(&enrollment, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Enrollment not found")
	}
	return helper.Success(c, "Enrollment retrieved", dto.FromEnrollmentModel(&enrollment))
}

// POST /api/enrollments/:id/cancel
func (ec *EnrollmentController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	enrollment, err := service.Cancel(ec.DB, id)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] cancel enrollment %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to cancel enrollment")
	}
	return helper.Success(c, "Enrollment cancelled", dto.FromEnrollmentModel(enrollment))
}
