package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/notifications/dto"
	"tecnischool_backend/internals/features/notifications/model"
	"tecnischool_backend/internals/features/notifications/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/notifications?page=&per_page=&unread=true
func (nc *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	query := nc.DB.Model(&model.NotificationModel{}).Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count notifications: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}

	var notifications []model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notifications).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}

	return helper.SuccessList(c, "Notifications retrieved", notifications,
		helper.BuildPagination(paging, total, len(notifications)))
}

// GET /api/notifications/unread-count
func (nc *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var count int64
	if err := nc.DB.Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] unread count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.Success(c, "Unread count retrieved", fiber.Map{"count": count})
}

// PATCH /api/notifications/:id/read
func (nc *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification ID")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.MarkAsRead(nc.DB, notificationID, userID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] mark notification read %s: %v", notificationID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	return helper.Success(c, "Notification marked as read", nil)
}

// PATCH /api/notifications/read-all
func (nc *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	count, err := service.MarkAllAsRead(nc.DB, userID)
	if err != nil {
		log.Printf("[ERROR] mark all notifications read: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.Success(c, "Notifications marked as read", fiber.Map{"count": count})
}

// POST /api/notifications/send (admin)
func (nc *NotificationController) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ntype := req.Type
	if ntype == "" {
		ntype = model.TypeInfo
	}

	count, err := service.NotifyUsers(nc.DB, req.UserIDs, req.Title, req.Message, ntype, req.Payload)
	if err != nil {
		log.Printf("[ERROR] send notifications: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to send notifications")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notifications sent", fiber.Map{"count": count})
}

// POST /api/notifications/broadcast (admin)
func (nc *NotificationController) Broadcast(c *fiber.Ctx) error {
	var req dto.BroadcastNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ntype := req.Type
	if ntype == "" {
		ntype = model.TypeInfo
	}

	count, err := service.BroadcastToRole(nc.DB, req.Role, req.Title, req.Message, ntype, req.Payload)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] broadcast notifications to %s: %v", req.Role, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to broadcast notifications")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notifications broadcast", fiber.Map{"count": count})
}
