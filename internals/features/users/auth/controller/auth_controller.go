package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/users/auth/service"
	userDTO "tecnischool_backend/internals/features/users/user/dto"
	userModel "tecnischool_backend/internals/features/users/user/model"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Authenticate(ac.DB, req.Identifier, req.Password)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, err := service.IssueToken(user, time.Now())
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  userDTO.FromUserModel(user),
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ac.DB.Preload("Roles").First(&user, "id = ?", userID).Error; err != nil {
		return helper.TranslateDBError(err, "User not found")
	}
	return helper.Success(c, "Profile retrieved", userDTO.FromUserModel(&user))
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ChangePassword(ac.DB, userID, req.CurrentPassword, req.NewPassword); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.Success(c, "Password updated", nil)
}
