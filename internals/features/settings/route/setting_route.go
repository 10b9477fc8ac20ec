package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/settings/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func SettingRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewSettingController(db)

	settings := api.Group("/settings")

	settings.Get("/", sc.List)
	settings.Get("/:key", sc.GetByKey)
	settings.Put("/:key",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("settings"), constants.AdminOnly...),
		sc.Update,
	)
}
