package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tecnischool_backend/internals/configs"
	userModel "tecnischool_backend/internals/features/users/user/model"
)

const loginFailedMsg = "Invalid credentials"

// Authenticate resolves identifier (username OR email) and verifies the
// password. Every failure path returns the same generic 401 so the response
// does not reveal which field was wrong.
func Authenticate(db *gorm.DB, identifier, password string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.Preload("Roles").
		Where("user_name = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, loginFailedMsg)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}

	if !user.IsActive || user.Password == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, loginFailedMsg)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, loginFailedMsg)
	}
	return &user, nil
}

// IssueToken signs an access token embedding id, email and role names.
// TTL comes from JWT_EXPIRY_HOURS.
func IssueToken(user *userModel.UserModel, now time.Time) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
	}

	ttl := time.Duration(configs.JWTExpiryHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"roles": user.RoleNames(),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return signed, nil
}

// ChangePassword verifies the current password and stores a new hash.
func ChangePassword(db *gorm.DB, userID interface{}, current, next string) error {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}
	return nil
}
