package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/academics/courses/dto"
	"tecnischool_backend/internals/features/academics/courses/model"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// POST /api/courses
func (cc *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlug(cc.DB, "courses", "slug", helper.GenerateSlug(req.Name))
	if err != nil {
		log.Printf("[ERROR] course slug: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	course := model.CourseModel{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		IsActive:    true,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Course slug already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", dto.FromCourseModel(&course))
}

// GET /api/courses — active courses with ordered levels.
func (cc *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := cc.DB.Model(&model.CourseModel{})
	if c.Query("include_inactive") != "true" {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var courses []model.CourseModel
	if err := q.Preload("Levels", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).
		Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.SuccessList(c, "Courses retrieved", dto.FromCourseModels(courses),
		helper.BuildPagination(paging, total, len(courses)))
}

// GET /api/courses/:id
func (cc *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var course model.CourseModel
	if err := cc.DB.Preload("Levels", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&course, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}
	return helper.Success(c, "Course retrieved", dto.FromCourseModel(&course))
}

// PUT /api/courses/:id
func (cc *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := cc.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := cc.DB.Model(&course).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.Success(c, "Course updated", dto.FromCourseModel(&course))
}

// POST /api/courses/:id/levels
func (cc *CourseController) AddLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var req dto.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := cc.DB.First(&course, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Course not found")
	}

	level := model.LevelModel{
		CourseID:      course.ID,
		Name:          req.Name,
		Position:      req.Position,
		DurationHours: req.DurationHours,
		Price:         req.Price,
	}
	if err := cc.DB.Create(&level).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create level")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Level created", dto.FromLevelModel(&level))
}

// PUT /api/courses/:id/levels/:levelId
func (cc *CourseController) UpdateLevel(c *fiber.Ctx) error {
	levelID, err := uuid.Parse(c.Params("levelId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid level ID")
	}

	var req dto.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var level model.LevelModel
	if err := cc.DB.First(&level, "id = ? AND course_id = ?", levelID, c.Params("id")).Error; err != nil {
		return helper.TranslateDBError(err, "Level not found")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.DurationHours != nil {
		updates["duration_hours"] = *req.DurationHours
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := cc.DB.Model(&level).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update level")
	}
	return helper.Success(c, "Level updated", dto.FromLevelModel(&level))
}
