package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/settings/dto"
	"tecnischool_backend/internals/features/settings/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GET /api/settings
func (sc *SettingController) List(c *fiber.Ctx) error {
	settings, err := service.GetAll(sc.DB, time.Now())
	if err != nil {
		log.Printf("[ERROR] list settings: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return helper.Success(c, "Settings retrieved", settings)
}

// GET /api/settings/:key
func (sc *SettingController) GetByKey(c *fiber.Ctx) error {
	key := strings.ToUpper(strings.TrimSpace(c.Params("key")))
	if key == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Setting key is required")
	}

	value, err := service.Get(sc.DB, key, time.Now())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] get setting %s: %v", key, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load setting")
	}
	return helper.Success(c, "Setting retrieved", fiber.Map{"key": key, "value": value})
}

// PUT /api/settings/:key
func (sc *SettingController) Update(c *fiber.Ctx) error {
	key := strings.ToUpper(strings.TrimSpace(c.Params("key")))
	if key == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Setting key is required")
	}

	var req dto.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	setting, err := service.Set(sc.DB, key, req.Value, userID)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] update setting %s: %v", key, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update setting")
	}
	return helper.Success(c, "Setting updated", setting)
}
