package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	database "tecnischool_backend/internals/databases"
	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/features/academics/groups/model"
	notificationModel "tecnischool_backend/internals/features/notifications/model"
	teacherModel "tecnischool_backend/internals/features/people/teachers/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func seedUser(t *testing.T, db *gorm.DB, name string) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName: name,
		Email:    name + "@example.com",
		Password: "x",
		FullName: name,
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedTeacher(t *testing.T, db *gorm.DB, name string) *teacherModel.TeacherModel {
	t.Helper()
	u := seedUser(t, db, name)
	tm := teacherModel.TeacherModel{UserID: u.ID, DocumentNumber: "DOC-" + name}
	require.NoError(t, db.Create(&tm).Error)
	return &tm
}

func seedGroup(t *testing.T, db *gorm.DB, teacherID *uuid.UUID, code string) *model.GroupModel {
	t.Helper()
	course := courseModel.CourseModel{Name: "Welding", Slug: "welding-" + code, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	level := courseModel.LevelModel{CourseID: course.ID, Name: "Level 1", Position: 1, Price: 300}
	require.NoError(t, db.Create(&level).Error)

	g := model.GroupModel{
		LevelID:   level.ID,
		TeacherID: teacherID,
		Code:      code,
		Capacity:  20,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&g).Error)
	return &g
}

func seedAdmins(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	role := userModel.RoleModel{Name: constants.RoleAdmin}
	require.NoError(t, db.Create(&role).Error)
	for i := 0; i < n; i++ {
		u := seedUser(t, db, "admin"+string(rune('a'+i)))
		link := userModel.UserRoleModel{UserID: u.ID, RoleID: role.ID}
		require.NoError(t, db.Create(&link).Error)
	}
}

func TestSubmitGrades_TransitionsAndNotifiesAdmins(t *testing.T) {
	db := newTestDB(t)
	seedAdmins(t, db, 2)
	teacher := seedTeacher(t, db, "smith")
	group := seedGroup(t, db, &teacher.ID, "WELD-1A")

	updated, err := SubmitGrades(db, group.ID, teacher.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusGradesSubmitted, updated.Status)

	var stored model.GroupModel
	require.NoError(t, db.First(&stored, "id = ?", group.ID).Error)
	assert.Equal(t, model.StatusGradesSubmitted, stored.Status)

	var notifications []notificationModel.NotificationModel
	require.NoError(t, db.Find(&notifications).Error)
	assert.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, notificationModel.TypeGradesSubmitted, n.Type)
	}
}

func TestSubmitGrades_UnknownGroup(t *testing.T) {
	db := newTestDB(t)
	_, err := SubmitGrades(db, uuid.New(), uuid.New())
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestSubmitGrades_NoAssignedTeacher(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, nil, "WELD-1B")

	_, err := SubmitGrades(db, group.ID, uuid.New())
	assert.Equal(t, fiber.StatusInternalServerError, fiberCode(t, err))
}

func TestSubmitGrades_WrongTeacher(t *testing.T) {
	db := newTestDB(t)
	assigned := seedTeacher(t, db, "smith")
	other := seedTeacher(t, db, "jones")
	group := seedGroup(t, db, &assigned.ID, "WELD-1C")

	_, err := SubmitGrades(db, group.ID, other.UserID)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	var stored model.GroupModel
	require.NoError(t, db.First(&stored, "id = ?", group.ID).Error)
	assert.Equal(t, model.StatusActive, stored.Status)
}

func TestSubmitGrades_RejectedWhenNotActive(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "smith")
	group := seedGroup(t, db, &teacher.ID, "WELD-1D")
	require.NoError(t, db.Model(group).Update("status", model.StatusGradesSubmitted).Error)

	_, err := SubmitGrades(db, group.ID, teacher.UserID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestSubmitGrades_SurvivesNotificationFailure(t *testing.T) {
	db := newTestDB(t)
	// no ADMIN role seeded: the broadcast fails with 404 internally
	teacher := seedTeacher(t, db, "smith")
	group := seedGroup(t, db, &teacher.ID, "WELD-1E")

	updated, err := SubmitGrades(db, group.ID, teacher.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusGradesSubmitted, updated.Status)

	var count int64
	require.NoError(t, db.Model(&notificationModel.NotificationModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCloseGroup_CompletesActiveEnrollmentsOnly(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "smith")
	group := seedGroup(t, db, &teacher.ID, "WELD-2A")

	active := enrollmentModel.EnrollmentModel{
		StudentID: uuid.New(), GroupID: group.ID, Status: enrollmentModel.StatusActive,
	}
	cancelled := enrollmentModel.EnrollmentModel{
		StudentID: uuid.New(), GroupID: group.ID, Status: enrollmentModel.StatusCancelled,
	}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&cancelled).Error)

	updated, err := CloseGroup(db, group.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	var a, c enrollmentModel.EnrollmentModel
	require.NoError(t, db.First(&a, "id = ?", active.ID).Error)
	require.NoError(t, db.First(&c, "id = ?", cancelled.ID).Error)
	assert.Equal(t, enrollmentModel.StatusCompleted, a.Status)
	assert.Equal(t, enrollmentModel.StatusCancelled, c.Status)
}

func TestCloseGroup_FromGradesSubmitted(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "smith")
	group := seedGroup(t, db, &teacher.ID, "WELD-2B")
	require.NoError(t, db.Model(group).Update("status", model.StatusGradesSubmitted).Error)

	updated, err := CloseGroup(db, group.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)
}

func TestCloseGroup_AlreadyCompleted(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "smith")
	group := seedGroup(t, db, &teacher.ID, "WELD-2C")
	require.NoError(t, db.Model(group).Update("status", model.StatusCompleted).Error)

	_, err := CloseGroup(db, group.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestCanTransitionTo_ForwardOnly(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{model.StatusActive, model.StatusGradesSubmitted, true},
		{model.StatusActive, model.StatusCompleted, true},
		{model.StatusGradesSubmitted, model.StatusCompleted, true},
		{model.StatusGradesSubmitted, model.StatusActive, false},
		{model.StatusCompleted, model.StatusActive, false},
		{model.StatusCompleted, model.StatusGradesSubmitted, false},
	}
	for _, tc := range cases {
		g := model.GroupModel{Status: tc.from}
		assert.Equal(t, tc.ok, g.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
