package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/academics/enrollments/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ec := controller.NewEnrollmentController(db)

	enrollments := api.Group("/enrollments")

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorStaff("enrollments"), constants.StaffRoles...)
	enrollments.Get("/", staffOnly, ec.List)
	enrollments.Get("/:id", staffOnly, ec.GetByID)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("enrollment management"), constants.AdminOnly...)
	enrollments.Post("/", adminOnly, ec.Create)
	enrollments.Post("/:id/cancel", adminOnly, ec.Cancel)
}
