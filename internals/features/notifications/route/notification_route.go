package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/notifications/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	nc := controller.NewNotificationController(db)

	notifications := api.Group("/notifications")

	notifications.Get("/", nc.ListMine)
	notifications.Get("/unread-count", nc.UnreadCount)
	notifications.Patch("/read-all", nc.MarkAllAsRead)
	notifications.Patch("/:id/read", nc.MarkAsRead)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("notification delivery"), constants.AdminOnly...)
	notifications.Post("/send", adminOnly, nc.Send)
	notifications.Post("/broadcast", adminOnly, nc.Broadcast)
}
