package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	groupService "tecnischool_backend/internals/features/academics/groups/service"
	"tecnischool_backend/internals/features/grades/dto"
	"tecnischool_backend/internals/features/grades/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

func (gc *GradeController) ensureGroupAccess(c *fiber.Ctx, groupID uuid.UUID) error {
	group, err := groupService.LoadGroup(gc.DB, groupID)
	if err != nil {
		return err
	}
	if helper.HasRole(c, constants.RoleAdmin) {
		return nil
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	if group.Teacher == nil || group.Teacher.UserID != userID {
		return fiber.NewError(fiber.StatusForbidden, "You are not the teacher assigned to this group")
	}
	return nil
}

// POST /api/grades/batch
func (gc *GradeController) SaveBatch(c *fiber.Ctx) error {
	var req dto.SaveBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := gc.ensureGroupAccess(c, req.GroupID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.SaveBatch(gc.DB, req.GroupID, req.Period, req.Records, userID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] grade batch group %s: %v", req.GroupID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save grades")
	}
	return helper.Success(c, "Grades saved", fiber.Map{"count": len(req.Records)})
}

// GET /api/grades/enrollment/:enrollmentId
func (gc *GradeController) ListByEnrollment(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("enrollmentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid enrollment ID")
	}

	grades, err := service.ListByEnrollment(gc.DB, enrollmentID)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] list grades enrollment %s: %v", enrollmentID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load grades")
	}
	return helper.Success(c, "Grades retrieved", grades)
}

// GET /api/grades/group/:groupId
func (gc *GradeController) ListByGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	if err := gc.ensureGroupAccess(c, groupID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	grades, err := service.ListByGroup(gc.DB, groupID)
	if err != nil {
		log.Printf("[ERROR] list grades group %s: %v", groupID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load grades")
	}
	return helper.Success(c, "Grades retrieved", grades)
}
