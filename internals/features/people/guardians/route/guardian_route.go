package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/people/guardians/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func GuardianRoutes(api fiber.Router, db *gorm.DB) {
	gc := controller.NewGuardianController(db)

	guardians := api.Group("/guardians")

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorStaff("guardian records"), constants.StaffRoles...)
	guardians.Get("/", staffOnly, gc.List)
	guardians.Get("/:id", staffOnly, gc.GetByID)
	guardians.Get("/:id/students", staffOnly, gc.ListStudents)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("guardian management"), constants.AdminOnly...)
	guardians.Post("/", adminOnly, gc.Create)
	guardians.Put("/:id", adminOnly, gc.Update)
}
