package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/notifications/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
)

// NotifyUser inserts a single notification row.
func NotifyUser(db *gorm.DB, userID uuid.UUID, title, message, ntype string, payload datatypes.JSON) error {
	n := model.NotificationModel{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    ntype,
		Payload: payload,
	}
	return db.Create(&n).Error
}

// NotifyUsers bulk-inserts one notification per id. Empty list is a no-op.
func NotifyUsers(db *gorm.DB, userIDs []uuid.UUID, title, message, ntype string, payload datatypes.JSON) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	rows := make([]model.NotificationModel, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, model.NotificationModel{
			UserID:  id,
			Title:   title,
			Message: message,
			Type:    ntype,
			Payload: payload,
		})
	}
	if err := db.CreateInBatches(&rows, 200).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// BroadcastToRole fans one message out to every user holding roleName.
// Unknown role → 404. A role with zero members is not an error: count 0.
func BroadcastToRole(db *gorm.DB, roleName, title, message, ntype string, payload datatypes.JSON) (int, error) {
	var role userModel.RoleModel
	if err := db.First(&role, "name = ?", roleName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fiber.NewError(fiber.StatusNotFound, "Role not found: "+roleName)
		}
		return 0, err
	}

	var userIDs []uuid.UUID
	if err := db.Model(&userModel.UserRoleModel{}).
		Where("role_id = ?", role.ID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return 0, err
	}

	return NotifyUsers(db, userIDs, title, message, ntype, payload)
}

// MarkAsRead flips one notification owned by userID. A foreign or unknown id
// reports 404 (not 403) so existence is not leaked.
func MarkAsRead(db *gorm.DB, notificationID, userID uuid.UUID) error {
	res := db.Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notification not found")
	}
	return nil
}

// MarkAllAsRead flips every unread notification of userID, returning the count.
func MarkAllAsRead(db *gorm.DB, userID uuid.UUID) (int64, error) {
	res := db.Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
