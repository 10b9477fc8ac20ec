package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "tecnischool_backend/internals/databases"
	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
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

func seedCourseWithGroup(t *testing.T, db *gorm.DB, name, slug, code string, active bool) *groupModel.GroupModel {
	t.Helper()
	course := courseModel.CourseModel{Name: name, Slug: slug, IsActive: active}
	require.NoError(t, db.Create(&course).Error)
	level := courseModel.LevelModel{CourseID: course.ID, Name: "Level 1", Position: 1}
	require.NoError(t, db.Create(&level).Error)
	group := groupModel.GroupModel{
		LevelID:   level.ID,
		Code:      code,
		Capacity:  20,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&group).Error)
	return &group
}

func enroll(t *testing.T, db *gorm.DB, groupID uuid.UUID, status string, price float64) {
	t.Helper()
	e := enrollmentModel.EnrollmentModel{
		StudentID: uuid.New(), GroupID: groupID, Status: status, AgreedPrice: price,
	}
	require.NoError(t, db.Create(&e).Error)
}

func TestRevenueByCourse(t *testing.T) {
	db := newTestDB(t)

	welding := seedCourseWithGroup(t, db, "Welding", "welding", "WELD-1A", true)
	electrics := seedCourseWithGroup(t, db, "Electrics", "electrics", "ELEC-1A", true)
	seedCourseWithGroup(t, db, "Retired", "retired", "RET-1A", false)

	enroll(t, db, welding.ID, enrollmentModel.StatusActive, 300)
	enroll(t, db, welding.ID, enrollmentModel.StatusCompleted, 255)
	enroll(t, db, welding.ID, enrollmentModel.StatusCancelled, 300) // excluded
	enroll(t, db, electrics.ID, enrollmentModel.StatusActive, 200)

	entries, err := RevenueByCourse(db)
	require.NoError(t, err)
	require.Len(t, entries, 2, "inactive courses are excluded")

	// ordered by revenue, highest first
	assert.Equal(t, "Welding", entries[0].CourseName)
	assert.Equal(t, 555.0, entries[0].Revenue)
	assert.Equal(t, int64(2), entries[0].StudentCount)

	assert.Equal(t, "Electrics", entries[1].CourseName)
	assert.Equal(t, 200.0, entries[1].Revenue)
	assert.Equal(t, int64(1), entries[1].StudentCount)
}

func TestRevenueByCourse_NoEnrollments(t *testing.T) {
	db := newTestDB(t)
	seedCourseWithGroup(t, db, "Welding", "welding", "WELD-1A", true)

	entries, err := RevenueByCourse(db)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].Revenue)
	assert.Zero(t, entries[0].StudentCount)
}
