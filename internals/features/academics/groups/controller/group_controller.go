package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/academics/groups/dto"
	"tecnischool_backend/internals/features/academics/groups/model"
	"tecnischool_backend/internals/features/academics/groups/service"
	helper "tecnischool_backend/internals/helpers"
	"tecnischool_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// POST /api/groups
func (gc *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date must not be before start_date")
	}

	group := model.GroupModel{
		LevelID:     req.LevelID,
		TeacherID:   req.TeacherID,
		ClassroomID: req.ClassroomID,
		Code:        req.Code,
		Capacity:    req.Capacity,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        pq.StringArray(req.Days),
		Status:      model.StatusActive,
	}
	if req.StartTime != "" {
		t, err := dbtime.Parse(req.StartTime)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid start_time, expected HH:MM")
		}
		group.StartTime = t
	}
	if req.EndTime != "" {
		t, err := dbtime.Parse(req.EndTime)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid end_time, expected HH:MM")
		}
		group.EndTime = t
	}

	if err := gc.DB.Create(&group).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Group code already exists")
		}
		log.Printf("[ERROR] create group: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group created", dto.FromGroupModel(&group))
}

// GET /api/groups?level_id=&teacher_id=&status=
func (gc *GroupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := gc.DB.Model(&model.GroupModel{})
	if levelID := c.Query("level_id"); levelID != "" {
		q = q.Where("level_id = ?", levelID)
	}
	if teacherID := c.Query("teacher_id"); teacherID != "" {
		q = q.Where("teacher_id = ?", teacherID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count groups")
	}

	var groups []model.GroupModel
	if err := q.Preload("Teacher").Preload("Teacher.User").
		Order("code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&groups).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list groups")
	}

	return helper.SuccessList(c, "Groups retrieved", dto.FromGroupModels(groups),
		helper.BuildPagination(paging, total, len(groups)))
}

// GET /api/groups/:groupId
func (gc *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	var group model.GroupModel
	if err := gc.DB.Preload("Teacher").Preload("Teacher.User").Preload("Level").
		First(&group, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Group not found")
	}
	return helper.Success(c, "Group retrieved", dto.FromGroupModel(&group))
}

// PUT /api/groups/:groupId
func (gc *GroupController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var group model.GroupModel
	if err := gc.DB.First(&group, "id = ?", id).Error; err != nil {
		return helper.TranslateDBError(err, "Group not found")
	}
	if group.Status == model.StatusCompleted {
		return helper.Error(c, fiber.StatusConflict, "Completed groups cannot be modified")
	}

	updates := map[string]interface{}{}
	if req.TeacherID != nil {
		updates["teacher_id"] = *req.TeacherID
	}
	if req.ClassroomID != nil {
		updates["classroom_id"] = *req.ClassroomID
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if len(req.Days) > 0 {
		updates["days"] = pq.StringArray(req.Days)
	}
	if req.StartTime != nil {
		t, err := dbtime.Parse(*req.StartTime)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid start_time, expected HH:MM")
		}
		updates["start_time"] = t
	}
	if req.EndTime != nil {
		t, err := dbtime.Parse(*req.EndTime)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid end_time, expected HH:MM")
		}
		updates["end_time"] = t
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := gc.DB.Model(&group).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update group")
	}
	return helper.Success(c, "Group updated", dto.FromGroupModel(&group))
}

// POST /api/groups/:groupId/submit-grades — assigned teacher only.
func (gc *GroupController) SubmitGrades(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	group, err := service.SubmitGrades(gc.DB, id, userID)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] submit grades for group %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit grades")
	}
	return helper.Success(c, "Grades submitted", dto.FromGroupModel(group))
}

// POST /api/groups/:groupId/close — admin only (route-gated).
func (gc *GroupController) Close(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group ID")
	}

	group, err := service.CloseGroup(gc.DB, id)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] close group %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to close group")
	}
	return helper.Success(c, "Group closed", dto.FromGroupModel(group))
}
