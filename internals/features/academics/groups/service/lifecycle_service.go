package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/features/academics/groups/model"
	notificationModel "tecnischool_backend/internals/features/notifications/model"
	notificationService "tecnischool_backend/internals/features/notifications/service"
)

// SubmitGrades moves a group from ACTIVE to GRADES_SUBMITTED. Only the
// assigned teacher may do it. Admin notification afterwards is best-effort:
// its failure never rolls back the transition.
func SubmitGrades(db *gorm.DB, groupID, callerUserID uuid.UUID) (*model.GroupModel, error) {
	var group model.GroupModel
	if err := db.Preload("Teacher").Preload("Teacher.User").First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, err
	}

	if group.TeacherID == nil || group.Teacher == nil {
		// data-integrity fault, not a user error
		log.Printf("[ERROR] group %s has no assigned teacher", group.ID)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Group has no assigned teacher")
	}

	if group.Teacher.UserID != callerUserID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Only the assigned teacher may submit grades for this group")
	}

	if group.Status != model.StatusActive {
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Grades cannot be submitted while the group is %s", group.Status))
	}

	if err := db.Model(&group).Update("status", model.StatusGradesSubmitted).Error; err != nil {
		return nil, err
	}
	group.Status = model.StatusGradesSubmitted

	notifyAdminsGradesSubmitted(db, &group)

	return &group, nil
}

func notifyAdminsGradesSubmitted(db *gorm.DB, group *model.GroupModel) {
	teacherName := ""
	if group.Teacher != nil {
		teacherName = group.Teacher.User.FullName
	}
	payload := datatypes.JSON(fmt.Sprintf(`{"group_id":%q,"group_code":%q}`, group.ID, group.Code))

	count, err := notificationService.BroadcastToRole(db,
		constants.RoleAdmin,
		"Grades submitted",
		fmt.Sprintf("Teacher %s submitted grades for group %s", teacherName, group.Code),
		notificationModel.TypeGradesSubmitted,
		payload,
	)
	if err != nil {
		log.Printf("[WARNING] admin notification for group %s failed: %v", group.ID, err)
		return
	}
	log.Printf("[INFO] grades-submitted notification sent to %d admin(s)", count)
}

// CloseGroup completes a group and every ACTIVE enrollment under it in one
// transaction. CANCELLED enrollments are left untouched.
func CloseGroup(db *gorm.DB, groupID uuid.UUID) (*model.GroupModel, error) {
	var group model.GroupModel
	if err := db.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, err
	}

	if !group.CanTransitionTo(model.StatusCompleted) {
		return nil, fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Group cannot be closed from status %s", group.Status))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&group).Update("status", model.StatusCompleted).Error; err != nil {
			return err
		}
		return tx.Model(&enrollmentModel.EnrollmentModel{}).
			Where("group_id = ? AND status = ?", group.ID, enrollmentModel.StatusActive).
			Update("status", enrollmentModel.StatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	group.Status = model.StatusCompleted
	return &group, nil
}
