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

	database "tecnischool_backend/internals/databases"
	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	"tecnischool_backend/internals/features/academics/enrollments/model"
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	studentModel "tecnischool_backend/internals/features/people/students/model"
	schoolModel "tecnischool_backend/internals/features/schools/model"
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

func seedGroup(t *testing.T, db *gorm.DB, price float64, capacity int) *groupModel.GroupModel {
	t.Helper()
	course := courseModel.CourseModel{Name: "Carpentry", Slug: "carpentry", IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	level := courseModel.LevelModel{CourseID: course.ID, Name: "Level 1", Position: 1, Price: price}
	require.NoError(t, db.Create(&level).Error)
	group := groupModel.GroupModel{
		LevelID:   level.ID,
		Code:      "CARP-1A",
		Capacity:  capacity,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&group).Error)
	return &group
}

func seedStudent(t *testing.T, db *gorm.DB, name string, schoolID *uuid.UUID) *studentModel.StudentModel {
	t.Helper()
	u := userModel.UserModel{
		UserName: name, Email: name + "@example.com", Password: "x", FullName: name, IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	s := studentModel.StudentModel{UserID: u.ID, DocumentNumber: "S-" + name, SchoolID: schoolID}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

func seedSchoolWithDiscount(t *testing.T, db *gorm.DB, percent float64, active bool) *schoolModel.SchoolModel {
	t.Helper()
	school := schoolModel.SchoolModel{Name: "IES Norte", SIECode: "IES-N", Slug: "ies-norte", IsActive: true}
	require.NoError(t, db.Create(&school).Error)
	agreement := schoolModel.AgreementModel{Name: "Norte deal", DiscountPercent: percent, IsActive: active}
	require.NoError(t, db.Create(&agreement).Error)
	link := schoolModel.SchoolAgreementModel{SchoolID: school.ID, AgreementID: agreement.ID}
	require.NoError(t, db.Create(&link).Error)
	return &school
}

func TestEnroll_FullPriceWithoutSchool(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	student := seedStudent(t, db, "alice", nil)

	enrollment, err := Enroll(db, student.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, enrollment.Status)
	assert.Equal(t, 300.0, enrollment.AgreedPrice)
}

func TestEnroll_AppliesBestActiveDiscount(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	school := seedSchoolWithDiscount(t, db, 15, true)

	// a second, better agreement on the same school wins
	better := schoolModel.AgreementModel{Name: "Campaign", DiscountPercent: 25, IsActive: true}
	require.NoError(t, db.Create(&better).Error)
	require.NoError(t, db.Create(&schoolModel.SchoolAgreementModel{
		SchoolID: school.ID, AgreementID: better.ID,
	}).Error)

	student := seedStudent(t, db, "bruno", &school.ID)
	enrollment, err := Enroll(db, student.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 225.0, enrollment.AgreedPrice)
}

func TestEnroll_IgnoresInactiveAgreement(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	school := seedSchoolWithDiscount(t, db, 50, false)

	student := seedStudent(t, db, "carla", &school.ID)
	enrollment, err := Enroll(db, student.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, enrollment.AgreedPrice)
}

func TestEnroll_IgnoresExpiredAgreement(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	school := schoolModel.SchoolModel{Name: "IES Sur", SIECode: "IES-S", Slug: "ies-sur", IsActive: true}
	require.NoError(t, db.Create(&school).Error)

	past := time.Now().AddDate(-1, 0, 0)
	expired := schoolModel.AgreementModel{
		Name: "Old deal", DiscountPercent: 40, IsActive: true, ValidUntil: &past,
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&schoolModel.SchoolAgreementModel{
		SchoolID: school.ID, AgreementID: expired.ID,
	}).Error)

	student := seedStudent(t, db, "diego", &school.ID)
	enrollment, err := Enroll(db, student.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, enrollment.AgreedPrice)
}

func TestEnroll_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	student := seedStudent(t, db, "alice", nil)

	_, err := Enroll(db, student.ID, group.ID)
	require.NoError(t, err)
	_, err = Enroll(db, student.ID, group.ID)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestEnroll_CapacityEnforced(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 1)
	first := seedStudent(t, db, "alice", nil)
	second := seedStudent(t, db, "bruno", nil)

	_, err := Enroll(db, first.ID, group.ID)
	require.NoError(t, err)
	_, err = Enroll(db, second.ID, group.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestEnroll_CancelledSeatFreesCapacity(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 1)
	first := seedStudent(t, db, "alice", nil)
	second := seedStudent(t, db, "bruno", nil)

	enrollment, err := Enroll(db, first.ID, group.ID)
	require.NoError(t, err)
	_, err = Cancel(db, enrollment.ID)
	require.NoError(t, err)

	_, err = Enroll(db, second.ID, group.ID)
	assert.NoError(t, err)
}

func TestEnroll_ClosedGroup(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	require.NoError(t, db.Model(group).Update("status", groupModel.StatusCompleted).Error)
	student := seedStudent(t, db, "alice", nil)

	_, err := Enroll(db, student.ID, group.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestCancel_OnlyFromActive(t *testing.T) {
	db := newTestDB(t)
	group := seedGroup(t, db, 300, 20)
	student := seedStudent(t, db, "alice", nil)

	enrollment, err := Enroll(db, student.ID, group.ID)
	require.NoError(t, err)

	cancelled, err := Cancel(db, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = Cancel(db, enrollment.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}
