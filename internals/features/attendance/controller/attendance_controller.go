package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	groupService "tecnischool_backend/internals/features/academics/groups/service"
	"tecnischool_backend/internals/features/attendance/dto"
	"tecnischool_backend/internals/features/attendance/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// ensureGroupAccess loads the group and, when the caller is a TEACHER
// (and not an admin), requires them to be the assigned teacher.
func (ac *AttendanceController) ensureGroupAccess(c *fiber.Ctx, groupID uuid.UUID) (*groupModel.GroupModel, error) {
	group, err := groupService.LoadGroup(ac.DB, groupID)
	if err != nil {
		return nil, err
	}

	if helper.HasRole(c, constants.RoleAdmin) {
		return group, nil
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return nil, err
	}
	if group.Teacher == nil || group.Teacher.UserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You are not the teacher assigned to this group")
	}
	return group, nil
}

// GET /api/attendance/:groupId/date?date=YYYY-MM-DD
func (ac *AttendanceController) GetDay(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or missing date, expected YYYY-MM-DD")
	}

	if _, err := ac.ensureGroupAccess(c, groupID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	entries, err := service.GetDay(ac.DB, groupID, date)
	if err != nil {
		log.Printf("[ERROR] attendance day %s %s: %v", groupID, c.Query("date"), err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}
	return helper.Success(c, "Attendance retrieved", fiber.Map{
		"group_id": groupID,
		"date":     date.Format("2006-01-02"),
		"records":  entries,
	})
}

// POST /api/attendance/batch
func (ac *AttendanceController) SaveBatch(c *fiber.Ctx) error {
	var req dto.SaveBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	if _, err := ac.ensureGroupAccess(c, req.GroupID); err != nil {
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

	if err := service.SaveBatch(ac.DB, req.GroupID, date, req.Records, userID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] attendance batch group %s: %v", req.GroupID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return helper.Success(c, "Attendance saved", fiber.Map{"count": len(req.Records)})
}

// GET /api/attendance/:groupId/stats?start_date=&end_date=
func (ac *AttendanceController) Stats(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	start, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or missing start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or missing end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	if _, err := ac.ensureGroupAccess(c, groupID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	stats, err := service.Stats(ac.DB, groupID, start, end)
	if err != nil {
		log.Printf("[ERROR] attendance stats group %s: %v", groupID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute attendance stats")
	}
	return helper.Success(c, "Attendance stats retrieved", stats)
}
