package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "tecnischool_backend/internals/databases"
	"tecnischool_backend/internals/features/schools/model"
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

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewSchoolController(db)
	app.Post("/schools", ctrl.Create)
	return app
}

func postSchool(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/schools", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestCreateSchool_NormalizesSIECode(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	status, _ := postSchool(t, app, `{"name":"Escuela Taller Central","sie_code":" sie-0042 "}`)
	require.Equal(t, fiber.StatusCreated, status)

	var school model.SchoolModel
	require.NoError(t, db.First(&school, "sie_code = ?", "SIE-0042").Error)
	assert.True(t, school.IsActive)
	assert.NotEmpty(t, school.Slug)
}

func TestCreateSchool_DuplicateSIECode(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	status, _ := postSchool(t, app, `{"name":"Escuela Taller Central","sie_code":"SIE-0042"}`)
	require.Equal(t, fiber.StatusCreated, status)

	// same code, different casing and name
	status, body := postSchool(t, app, `{"name":"Otra Escuela","sie_code":"sie-0042"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "SIE code already registered", body["message"])

	var count int64
	require.NoError(t, db.Model(&model.SchoolModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateSchool_MissingFields(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	status, _ := postSchool(t, app, `{"name":"Sin Codigo"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
