package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/academics/courses/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	cc := controller.NewCourseController(db)

	courses := api.Group("/courses")

	// catalog reads are available to every authenticated role
	courses.Get("/", cc.List)
	courses.Get("/:id", cc.GetByID)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("course catalog"), constants.AdminOnly...)
	courses.Post("/", adminOnly, cc.Create)
	courses.Put("/:id", adminOnly, cc.Update)
	courses.Post("/:id/levels", adminOnly, cc.AddLevel)
	courses.Put("/:id/levels/:levelId", adminOnly, cc.UpdateLevel)
}
