package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tecnischool_backend/internals/features/users/user/model"
)

// GrantRole links userID to the named role, idempotently. The role must exist.
func GrantRole(db *gorm.DB, userID uuid.UUID, roleName string) error {
	var role model.RoleModel
	if err := db.First(&role, "name = ?", roleName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Role not found: "+roleName)
		}
		return err
	}

	link := model.UserRoleModel{UserID: userID, RoleID: role.ID}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// ReplaceRoles swaps the user's whole role set in one transaction.
// Repeated names in the request count once.
func ReplaceRoles(db *gorm.DB, userID uuid.UUID, roleNames []string) error {
	unique := make([]string, 0, len(roleNames))
	seen := make(map[string]bool, len(roleNames))
	for _, name := range roleNames {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}

	var roles []model.RoleModel
	if err := db.Where("name IN ?", unique).Find(&roles).Error; err != nil {
		return err
	}
	if len(roles) != len(unique) {
		return fiber.NewError(fiber.StatusBadRequest, "One or more roles do not exist")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserRoleModel{}).Error; err != nil {
			return err
		}
		links := make([]model.UserRoleModel, 0, len(roles))
		for _, r := range roles {
			links = append(links, model.UserRoleModel{UserID: userID, RoleID: r.ID})
		}
		return tx.Create(&links).Error
	})
}
