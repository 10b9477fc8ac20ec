package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/people/guardians/dto"
	"tecnischool_backend/internals/features/people/guardians/model"
	studentModel "tecnischool_backend/internals/features/people/students/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
	userService "tecnischool_backend/internals/features/users/user/service"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type GuardianController struct {
	DB *gorm.DB
}

func NewGuardianController(db *gorm.DB) *GuardianController {
	return &GuardianController{DB: db}
}

// POST /api/guardians
func (gc *GuardianController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuardianRequest
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

	guardian := model.GuardianModel{
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Occupation:     req.Occupation,
	}

	err = gc.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserName: req.UserName,
			Email:    req.Email,
			Password: string(hashed),
			FullName: req.FullName,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := userService.GrantRole(tx, user.ID, constants.RoleGuardian); err != nil {
			return err
		}
		guardian.UserID = user.ID
		return tx.Create(&guardian).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username, email or document number already registered")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create guardian: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create guardian")
	}

	if err := gc.DB.Preload("User").First(&guardian, "id = ?", guardian.ID).Error; err != nil {
		return helper.TranslateDBError(err, "Guardian not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guardian created", dto.FromGuardianModel(&guardian))
}

// GET /api/guardians
func (gc *GuardianController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := gc.DB.Model(&model.GuardianModel{}).
		Joins("JOIN users ON users.id = guardians.user_id")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.full_name ILIKE ? OR guardians.document_number ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count guardians")
	}

	var guardians []model.GuardianModel
	if err := q.Preload("User").
		Order("users.full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&guardians).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list guardians")
	}

	return helper.SuccessList(c, "Guardians retrieved", dto.FromGuardianModels(guardians),
		helper.BuildPagination(paging, total, len(guardians)))
}

// GET /api/guardians/:id
func (gc *GuardianController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	var guardian model.GuardianModel
	if err := gc.DB.Preload("User").First(&guardian, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Guardian not found")
	}
	return helper.Success(c, "Guardian retrieved", dto.FromGuardianModel(&guardian))
}

// GET /api/guardians/:id/students — students under this guardian's care.
func (gc *GuardianController) ListStudents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	var guardian model.GuardianModel
	if err := gc.DB.First(&guardian, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Guardian not found")
	}

	var students []studentModel.StudentModel
	if err := gc.DB.
		Joins("JOIN student_guardians sg ON sg.student_id = students.id").
		Where("sg.guardian_id = ?", id).
		Preload("User").
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.Success(c, "Students retrieved", students)
}

// PUT /api/guardians/:id
func (gc *GuardianController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	var req dto.UpdateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var guardian model.GuardianModel
	if err := gc.DB.Preload("User").First(&guardian, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Guardian not found")
	}

	err = gc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Occupation != nil {
			updates["occupation"] = *req.Occupation
		}
		if len(updates) > 0 {
			if err := tx.Model(&guardian).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.FullName != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", guardian.UserID).
				Update("full_name", *req.FullName).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update guardian")
	}

	if err := gc.DB.Preload("User").First(&guardian, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Guardian not found")
	}
	return helper.Success(c, "Guardian updated", dto.FromGuardianModel(&guardian))
}
