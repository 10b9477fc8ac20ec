package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/users/user/dto"
	"tecnischool_backend/internals/features/users/user/model"
	"tecnischool_backend/internals/features/users/user/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /api/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		IsActive: true,
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		for _, roleName := range req.Roles {
			if err := service.GrantRole(tx, user.ID, roleName); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username or email already registered")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	if err := uc.DB.Preload("Roles").First(&user, "id = ?", user.ID).Error; err == nil {
		return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.FromUserModel(&user))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.FromUserModel(&user))
}

// GET /api/users?search=&page=&per_page=
func (uc *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&model.UserModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR email ILIKE ? OR full_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Preload("Roles").
		Order("full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	return helper.SuccessList(c, "Users retrieved", dto.FromUserModels(users),
		helper.BuildPagination(paging, total, len(users)))
}

// GET /api/users/:id
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := uc.DB.Preload("Roles").First(&user, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "User not found")
	}
	return helper.Success(c, "User retrieved", dto.FromUserModel(&user))
}

// PUT /api/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "User not found")
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username or email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	if err := uc.DB.Preload("Roles").First(&user, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "User not found")
	}
	return helper.Success(c, "User updated", dto.FromUserModel(&user))
}

// PUT /api/users/:id/roles — replaces the whole role set atomically.
func (uc *UserController) ReplaceRoles(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.ReplaceRolesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "User not found")
	}

	if err := service.ReplaceRoles(uc.DB, id, req.Roles); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to replace roles")
	}

	if err := uc.DB.Preload("Roles").First(&user, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "User not found")
	}
	return helper.Success(c, "Roles updated", dto.FromUserModel(&user))
}

// DELETE /api/users/:id — deactivates, never hard-deletes.
func (uc *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	res := uc.DB.Model(&model.UserModel{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "User deactivated", nil)
}
