package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/users/auth/controller"
	middlewares "tecnischool_backend/internals/middlewares"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login publicly and profile endpoints behind auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	public := app.Group("/api/auth")
	public.Post("/login", middlewares.LoginRateLimiter(), ac.Login)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ac.Me)
	protected.Post("/change-password", ac.ChangePassword)
}
