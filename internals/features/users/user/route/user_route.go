package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/users/user/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

// UserRoutes mounts admin-only user management under an authenticated group.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	uc := controller.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly...),
	)
	users.Post("/", uc.Create)
	users.Get("/", uc.List)
	users.Get("/:id", uc.GetByID)
	users.Put("/:id", uc.Update)
	users.Put("/:id/roles", uc.ReplaceRoles)
	users.Delete("/:id", uc.Deactivate)
}
