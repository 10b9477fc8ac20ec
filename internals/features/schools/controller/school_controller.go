package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/schools/dto"
	"tecnischool_backend/internals/features/schools/model"
	helper "tecnischool_backend/internals/helpers"
)

var validate = validator.New()

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

// POST /api/schools
func (sc *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sieCode := strings.ToUpper(strings.TrimSpace(req.SIECode))

	var existing int64
	if err := sc.DB.Model(&model.SchoolModel{}).
		Where("sie_code = ?", sieCode).Count(&existing).Error; err != nil {
		log.Printf("[ERROR] check sie_code %s: %v", sieCode, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create school")
	}
	if existing > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "SIE code already registered")
	}

	slug, err := helper.EnsureUniqueSlug(sc.DB, "schools", "slug", helper.GenerateSlug(req.Name))
	if err != nil {
		log.Printf("[ERROR] school slug: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	school := model.SchoolModel{
		Name:     req.Name,
		SIECode:  sieCode,
		Slug:     slug,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}
	if err := sc.DB.Create(&school).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "SIE code already registered")
		}
		log.Printf("[ERROR] create school: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create school")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "School created", school)
}

// GET /api/schools?search=&page=&per_page=
func (sc *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := sc.DB.Model(&model.SchoolModel{}).Where("is_active = ?", true)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR sie_code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count schools: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schools")
	}

	var schools []model.SchoolModel
	if err := query.Order("name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&schools).Error; err != nil {
		log.Printf("[ERROR] list schools: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load schools")
	}
	return helper.SuccessList(c, "Schools retrieved", schools,
		helper.BuildPagination(paging, total, len(schools)))
}

// GET /api/schools/:id
func (sc *SchoolController) GetByID(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var school model.SchoolModel
	if err := sc.DB.Preload("Agreements").First(&school, "id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		log.Printf("[ERROR] get school %s: %v", schoolID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load school")
	}
	return helper.Success(c, "School retrieved", school)
}

// PUT /api/schools/:id
func (sc *SchoolController) Update(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var req dto.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		log.Printf("[ERROR] get school %s: %v", schoolID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update school")
	}

	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.SIECode != nil {
		school.SIECode = strings.ToUpper(strings.TrimSpace(*req.SIECode))
	}
	if req.Address != nil {
		school.Address = *req.Address
	}
	if req.Phone != nil {
		school.Phone = *req.Phone
	}
	if req.Email != nil {
		school.Email = *req.Email
	}

	if err := sc.DB.Save(&school).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "SIE code already registered")
		}
		log.Printf("[ERROR] update school %s: %v", schoolID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update school")
	}
	return helper.Success(c, "School updated", school)
}

// DELETE /api/schools/:id (soft)
func (sc *SchoolController) Deactivate(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	res := sc.DB.Model(&model.SchoolModel{}).
		Where("id = ? AND is_active = ?", schoolID, true).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("[ERROR] deactivate school %s: %v", schoolID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate school")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "School not found")
	}
	return helper.Success(c, "School deactivated", nil)
}

// POST /api/schools/:id/agreements
func (sc *SchoolController) LinkAgreement(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var req dto.LinkAgreementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var school model.SchoolModel
	if err := sc.DB.First(&school, "id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to link agreement")
	}
	var agreement model.AgreementModel
	if err := sc.DB.First(&agreement, "id = ?", req.AgreementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Agreement not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to link agreement")
	}

	link := model.SchoolAgreementModel{SchoolID: schoolID, AgreementID: req.AgreementID}
	if err := sc.DB.FirstOrCreate(&link, link).Error; err != nil {
		log.Printf("[ERROR] link agreement %s to school %s: %v", req.AgreementID, schoolID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to link agreement")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agreement linked", link)
}

// DELETE /api/schools/:id/agreements/:agreementId
func (sc *SchoolController) UnlinkAgreement(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school ID")
	}
	agreementID, err := uuid.Parse(c.Params("agreementId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid agreement ID")
	}

	res := sc.DB.Where("school_id = ? AND agreement_id = ?", schoolID, agreementID).
		Delete(&model.SchoolAgreementModel{})
	if res.Error != nil {
		log.Printf("[ERROR] unlink agreement %s from school %s: %v", agreementID, schoolID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unlink agreement")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Agreement link not found")
	}
	return helper.Success(c, "Agreement unlinked", nil)
}

// parseDatePtr turns an optional YYYY-MM-DD string into a *time.Time.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
