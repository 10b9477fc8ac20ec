package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/people/teachers/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	tc := controller.NewTeacherController(db)

	teachers := api.Group("/teachers")

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorStaff("teacher records"), constants.StaffRoles...)
	teachers.Get("/", staffOnly, tc.List)
	teachers.Get("/:id", staffOnly, tc.GetByID)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("teacher management"), constants.AdminOnly...)
	teachers.Post("/", adminOnly, tc.Create)
	teachers.Put("/:id", adminOnly, tc.Update)
	teachers.Post("/:id/photo", adminOnly, tc.UploadPhoto)
}
