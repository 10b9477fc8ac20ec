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
	"tecnischool_backend/internals/features/people/teachers/dto"
	"tecnischool_backend/internals/features/people/teachers/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
	userService "tecnischool_backend/internals/features/users/user/service"
	helper "tecnischool_backend/internals/helpers"
	ossHelper "tecnischool_backend/internals/helpers/oss"
)

var validate = validator.New()

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// POST /api/teachers
func (tc *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
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

	teacher := model.TeacherModel{
		DocumentNumber: req.DocumentNumber,
		Specialty:      req.Specialty,
		Phone:          req.Phone,
	}

	err = tc.DB.Transaction(func(tx *gorm.DB) error {
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
		if err := userService.GrantRole(tx, user.ID, constants.RoleTeacher); err != nil {
			return err
		}
		teacher.UserID = user.ID
		return tx.Create(&teacher).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username, email or document number already registered")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create teacher: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	if err := tc.DB.Preload("User").First(&teacher, "id = ?", teacher.ID).Error; err != nil {
		return helper.TranslateDBError(err, "Teacher not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher created", dto.FromTeacherModel(&teacher))
}

// GET /api/teachers
func (tc *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := tc.DB.Model(&model.TeacherModel{}).
		Joins("JOIN users ON users.id = teachers.user_id")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.full_name ILIKE ? OR teachers.document_number ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var teachers []model.TeacherModel
	if err := q.Preload("User").
		Order("users.full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&teachers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.SuccessList(c, "Teachers retrieved", dto.FromTeacherModels(teachers),
		helper.BuildPagination(paging, total, len(teachers)))
}

// GET /api/teachers/:id
func (tc *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var teacher model.TeacherModel
	if err := tc.DB.Preload("User").First(&teacher, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Teacher not found")
	}
	return helper.Success(c, "Teacher retrieved", dto.FromTeacherModel(&teacher))
}

// PUT /api/teachers/:id
func (tc *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher model.TeacherModel
	if err := tc.DB.Preload("User").First(&teacher, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Teacher not found")
	}

	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.Specialty != nil {
			updates["specialty"] = *req.Specialty
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if len(updates) > 0 {
			if err := tx.Model(&teacher).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.FullName != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", teacher.UserID).
				Update("full_name", *req.FullName).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}

	if err := tc.DB.Preload("User").First(&teacher, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Teacher not found")
	}
	return helper.Success(c, "Teacher updated", dto.FromTeacherModel(&teacher))
}

// POST /api/teachers/:id/photo
func (tc *TeacherController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var teacher model.TeacherModel
	if err := tc.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Teacher not found")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing photo file")
	}

	bucket, err := ossHelper.NewOSSBucket()
	if err != nil {
		log.Printf("[ERROR] oss bucket: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "File storage unavailable")
	}
	url, err := ossHelper.UploadImageWebP(bucket, fh, "teachers/photos")
	if err != nil {
		log.Printf("[ERROR] upload teacher photo: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Failed to process uploaded photo")
	}

	if err := tc.DB.Model(&teacher).Update("photo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store photo URL")
	}
	return helper.Success(c, "Photo uploaded", fiber.Map{"photo_url": url})
}
