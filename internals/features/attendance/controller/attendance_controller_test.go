package controller

import (
	"net/http/httptest"
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
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	teacherModel "tecnischool_backend/internals/features/people/teachers/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
	helper "tecnischool_backend/internals/helpers"
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

func seedGroup(t *testing.T, db *gorm.DB, teacherID *uuid.UUID, code string) *groupModel.GroupModel {
	t.Helper()
	course := courseModel.CourseModel{Name: "Welding", Slug: "welding-" + code, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	level := courseModel.LevelModel{CourseID: course.ID, Name: "Level 1", Position: 1, Price: 300}
	require.NoError(t, db.Create(&level).Error)

	g := groupModel.GroupModel{
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

// newTestApp mounts GetDay behind a stub of the auth middleware that
// injects the given identity into locals.
func newTestApp(db *gorm.DB, userID uuid.UUID, roles []string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocUserRoles, roles)
		return c.Next()
	})
	ctrl := NewAttendanceController(db)
	app.Get("/attendance/:groupId/date", ctrl.GetDay)
	return app
}

func getDay(t *testing.T, app *fiber.App, groupID uuid.UUID) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/attendance/"+groupID.String()+"/date?date=2026-03-02", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestGetDay_AssignedTeacherAllowed(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "mruiz")
	group := seedGroup(t, db, &teacher.ID, "WEL-1-A")

	app := newTestApp(db, teacher.UserID, []string{constants.RoleTeacher})
	assert.Equal(t, fiber.StatusOK, getDay(t, app, group.ID))
}

func TestGetDay_OtherTeacherForbidden(t *testing.T) {
	db := newTestDB(t)
	assigned := seedTeacher(t, db, "mruiz")
	other := seedTeacher(t, db, "jlopez")
	group := seedGroup(t, db, &assigned.ID, "WEL-1-A")

	app := newTestApp(db, other.UserID, []string{constants.RoleTeacher})
	assert.Equal(t, fiber.StatusForbidden, getDay(t, app, group.ID))
}

func TestGetDay_AdminBypassesAssignment(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "mruiz")
	group := seedGroup(t, db, &teacher.ID, "WEL-1-A")
	admin := seedUser(t, db, "admin")

	app := newTestApp(db, admin.ID, []string{constants.RoleAdmin})
	assert.Equal(t, fiber.StatusOK, getDay(t, app, group.ID))
}

func TestGetDay_UnknownGroup(t *testing.T) {
	db := newTestDB(t)
	teacher := seedTeacher(t, db, "mruiz")

	app := newTestApp(db, teacher.UserID, []string{constants.RoleTeacher})
	assert.Equal(t, fiber.StatusNotFound, getDay(t, app, uuid.New()))
}
