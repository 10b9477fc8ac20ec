package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/stats/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func StatsRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewStatsController(db)

	stats := api.Group("/stats",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("financial reporting"), constants.AdminOnly...),
	)

	stats.Get("/financial/revenue-by-course", sc.RevenueByCourse)
}
