package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/academics/groups/model"
)

// LoadGroup fetches a group with its teacher for ownership checks.
func LoadGroup(db *gorm.DB, groupID uuid.UUID) (*model.GroupModel, error) {
	var group model.GroupModel
	if err := db.Preload("Teacher").First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, err
	}
	return &group, nil
}
