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
	guardianModel "tecnischool_backend/internals/features/people/guardians/model"
	"tecnischool_backend/internals/features/people/students/dto"
	"tecnischool_backend/internals/features/people/students/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
	userService "tecnischool_backend/internals/features/users/user/service"
	helper "tecnischool_backend/internals/helpers"
	ossHelper "tecnischool_backend/internals/helpers/oss"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// POST /api/students — creates the user record and the student row together.
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
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

	student := model.StudentModel{
		DocumentNumber: req.DocumentNumber,
		BirthDate:      req.BirthDate,
		Phone:          req.Phone,
		Address:        req.Address,
		SchoolID:       req.SchoolID,
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
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
		if err := userService.GrantRole(tx, user.ID, constants.RoleStudent); err != nil {
			return err
		}
		student.UserID = user.ID
		return tx.Create(&student).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Username, email or document number already registered")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create student: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	if err := sc.DB.Preload("User").First(&student, "id = ?", student.ID).Error; err != nil {
		return helper.TranslateDBError(err, "Student not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", dto.FromStudentModel(&student))
}

// GET /api/students?search=&page=&per_page=
func (sc *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := sc.DB.Model(&model.StudentModel{}).
		Joins("JOIN users ON users.id = students.user_id")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("users.full_name ILIKE ? OR students.document_number ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := q.Preload("User").
		Order("users.full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	return helper.SuccessList(c, "Students retrieved", dto.FromStudentModels(students),
		helper.BuildPagination(paging, total, len(students)))
}

// GET /api/students/:id
func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := sc.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Student not found")
	}
	return helper.Success(c, "Student retrieved", dto.FromStudentModel(&student))
}

// PUT /api/students/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := sc.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Student not found")
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if req.BirthDate != nil {
			updates["birth_date"] = *req.BirthDate
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Address != nil {
			updates["address"] = *req.Address
		}
		if req.SchoolID != nil {
			updates["school_id"] = *req.SchoolID
		}
		if len(updates) > 0 {
			if err := tx.Model(&student).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.FullName != nil {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", student.UserID).
				Update("full_name", *req.FullName).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	if err := sc.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Student not found")
	}
	return helper.Success(c, "Student updated", dto.FromStudentModel(&student))
}

// POST /api/students/:id/photo — multipart upload, stored as WebP in OSS.
func (sc *StudentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Student not found")
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
	url, err := ossHelper.UploadImageWebP(bucket, fh, "students/photos")
	if err != nil {
		log.Printf("[ERROR] upload student photo: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Failed to process uploaded photo")
	}

	if err := sc.DB.Model(&student).Update("photo_url", url).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to store photo URL")
	}
	return helper.Success(c, "Photo uploaded", fiber.Map{"photo_url": url})
}

// POST /api/students/:id/guardians
func (sc *StudentController) LinkGuardian(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.LinkGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Student not found")
	}
	var guardian guardianModel.GuardianModel
	if err := sc.DB.First(&guardian, "id = ?", req.GuardianID).Error; err != nil {
		return helper.TranslateDBError(err, "Guardian not found")
	}

	link := model.StudentGuardianModel{
		StudentID:    student.ID,
		GuardianID:   guardian.ID,
		Relationship: req.Relationship,
	}
	if err := sc.DB.Save(&link).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to link guardian")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guardian linked", link)
}

// DELETE /api/students/:id/guardians/:guardianId
func (sc *StudentController) UnlinkGuardian(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	guardianID, err := uuid.Parse(c.Params("guardianId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid guardian ID")
	}

	res := sc.DB.Where("student_id = ? AND guardian_id = ?", id, guardianID).
		Delete(&model.StudentGuardianModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unlink guardian")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Guardian link not found")
	}
	return helper.Success(c, "Guardian unlinked", nil)
}
