package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/grades/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	gc := controller.NewGradeController(db)

	grades := api.Group("/grades")

	grades.Get("/enrollment/:enrollmentId", gc.ListByEnrollment)

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorStaff("grading"), constants.StaffRoles...)
	grades.Get("/group/:groupId", staffOnly, gc.ListByGroup)
	grades.Post("/batch", staffOnly, gc.SaveBatch)
}
