package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/schools/dto"
	"tecnischool_backend/internals/features/schools/model"
	helper "tecnischool_backend/internals/helpers"
)

type ClassroomController struct {
	DB *gorm.DB
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

// POST /api/classrooms
func (cc *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	classroom := model.ClassroomModel{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
		IsActive: true,
	}
	if err := cc.DB.Create(&classroom).Error; err != nil {
		log.Printf("[ERROR] create classroom: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create classroom")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classroom created", classroom)
}

// GET /api/classrooms
func (cc *ClassroomController) List(c *fiber.Ctx) error {
	var classrooms []model.ClassroomModel
	if err := cc.DB.Where("is_active = ?", true).
		Order("name ASC").
		Find(&classrooms).Error; err != nil {
		log.Printf("[ERROR] list classrooms: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load classrooms")
	}
	return helper.Success(c, "Classrooms retrieved", classrooms)
}

// PUT /api/classrooms/:id
func (cc *ClassroomController) Update(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid classroom ID")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var classroom model.ClassroomModel
	if err := cc.DB.First(&classroom, "id = ?", classroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[ERROR] get classroom %s: %v", classroomID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update classroom")
	}

	if req.Name != nil {
		classroom.Name = *req.Name
	}
	if req.Capacity != nil {
		classroom.Capacity = *req.Capacity
	}
	if req.Location != nil {
		classroom.Location = *req.Location
	}

	if err := cc.DB.Save(&classroom).Error; err != nil {
		log.Printf("[ERROR] update classroom %s: %v", classroomID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update classroom")
	}
	return helper.Success(c, "Classroom updated", classroom)
}

// DELETE /api/classrooms/:id (soft)
func (cc *ClassroomController) Deactivate(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid classroom ID")
	}

	res := cc.DB.Model(&model.ClassroomModel{}).
		Where("id = ? AND is_active = ?", classroomID, true).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("[ERROR] deactivate classroom %s: %v", classroomID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate classroom")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Classroom not found")
	}
	return helper.Success(c, "Classroom deactivated", nil)
}
