package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware.
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRoles = "user_roles"
)

// GetUserID returns the authenticated user's id from locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user ID in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

// GetUserRoles returns the authenticated user's role set from locals.
func GetUserRoles(c *fiber.Ctx) []string {
	if roles, ok := c.Locals(LocUserRoles).([]string); ok {
		return roles
	}
	return nil
}

// HasRole reports whether the caller carries the given role.
func HasRole(c *fiber.Ctx, role string) bool {
	for _, r := range GetUserRoles(c) {
		if r == role {
			return true
		}
	}
	return false
}
