package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/attendance/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ac := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("attendance"), constants.StaffRoles...),
	)

	attendance.Get("/:groupId/date", ac.GetDay)
	attendance.Get("/:groupId/stats", ac.Stats)
	attendance.Post("/batch", ac.SaveBatch)
}
