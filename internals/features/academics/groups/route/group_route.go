package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/academics/groups/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func GroupRoutes(api fiber.Router, db *gorm.DB) {
	gc := controller.NewGroupController(db)

	groups := api.Group("/groups")

	groups.Get("/", gc.List)
	groups.Get("/:groupId", gc.GetByID)

	// ownership of submit-grades is enforced in the service, not here:
	// the caller must hold TEACHER but also be THE assigned teacher.
	groups.Post("/:groupId/submit-grades",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("grade submission"), constants.RoleTeacher),
		gc.SubmitGrades,
	)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("group management"), constants.AdminOnly...)
	groups.Post("/", adminOnly, gc.Create)
	groups.Put("/:groupId", adminOnly, gc.Update)
	groups.Post("/:groupId/close", adminOnly, gc.Close)
}
