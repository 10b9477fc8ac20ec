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

type AgreementController struct {
	DB *gorm.DB
}

func NewAgreementController(db *gorm.DB) *AgreementController {
	return &AgreementController{DB: db}
}

// POST /api/agreements
func (ac *AgreementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	validFrom, err := parseDatePtr(req.ValidFrom)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid valid_from, expected YYYY-MM-DD")
	}
	validUntil, err := parseDatePtr(req.ValidUntil)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid valid_until, expected YYYY-MM-DD")
	}
	if validFrom != nil && validUntil != nil && validUntil.Before(*validFrom) {
		return helper.Error(c, fiber.StatusBadRequest, "valid_until must not be before valid_from")
	}

	agreement := model.AgreementModel{
		Name:            req.Name,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
		IsActive:        true,
	}
	if err := ac.DB.Create(&agreement).Error; err != nil {
		log.Printf("[ERROR] create agreement: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create agreement")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agreement created", agreement)
}

// GET /api/agreements
func (ac *AgreementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ac.DB.Model(&model.AgreementModel{})
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count agreements: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load agreements")
	}

	var agreements []model.AgreementModel
	if err := query.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&agreements).Error; err != nil {
		log.Printf("[ERROR] list agreements: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load agreements")
	}
	return helper.SuccessList(c, "Agreements retrieved", agreements,
		helper.BuildPagination(paging, total, len(agreements)))
}

// GET /api/agreements/:id
func (ac *AgreementController) GetByID(c *fiber.Ctx) error {
	agreementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid agreement ID")
	}

	var agreement model.AgreementModel
	if err := ac.DB.First(&agreement, "id = ?", agreementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Agreement not found")
		}
		log.Printf("[ERROR] get agreement %s: %v", agreementID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load agreement")
	}
	return helper.Success(c, "Agreement retrieved", agreement)
}

// PUT /api/agreements/:id
func (ac *AgreementController) Update(c *fiber.Ctx) error {
	agreementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid agreement ID")
	}

	var req dto.UpdateAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var agreement model.AgreementModel
	if err := ac.DB.First(&agreement, "id = ?", agreementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Agreement not found")
		}
		log.Printf("[ERROR] get agreement %s: %v", agreementID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update agreement")
	}

	if req.Name != nil {
		agreement.Name = *req.Name
	}
	if req.DiscountPercent != nil {
		agreement.DiscountPercent = *req.DiscountPercent
	}
	if req.ValidFrom != nil {
		validFrom, err := parseDatePtr(req.ValidFrom)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid valid_from, expected YYYY-MM-DD")
		}
		agreement.ValidFrom = validFrom
	}
	if req.ValidUntil != nil {
		validUntil, err := parseDatePtr(req.ValidUntil)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid valid_until, expected YYYY-MM-DD")
		}
		agreement.ValidUntil = validUntil
	}
	if req.IsActive != nil {
		agreement.IsActive = *req.IsActive
	}

	if err := ac.DB.Save(&agreement).Error; err != nil {
		log.Printf("[ERROR] update agreement %s: %v", agreementID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update agreement")
	}
	return helper.Success(c, "Agreement updated", agreement)
}
