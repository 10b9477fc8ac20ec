package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/people/students/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewStudentController(db)

	students := api.Group("/students")

	// reads are open to staff
	students.Get("/", authMiddleware.OnlyRoles(constants.RoleErrorStaff("student records"), constants.StaffRoles...), sc.List)
	students.Get("/:id", authMiddleware.OnlyRoles(constants.RoleErrorStaff("student records"), constants.StaffRoles...), sc.GetByID)

	// writes are admin-only
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("student management"), constants.AdminOnly...)
	students.Post("/", adminOnly, sc.Create)
	students.Put("/:id", adminOnly, sc.Update)
	students.Post("/:id/photo", adminOnly, sc.UploadPhoto)
	students.Post("/:id/guardians", adminOnly, sc.LinkGuardian)
	students.Delete("/:id/guardians/:guardianId", adminOnly, sc.UnlinkGuardian)
}
