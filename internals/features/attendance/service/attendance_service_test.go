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
	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	"tecnischool_backend/internals/features/attendance/dto"
	"tecnischool_backend/internals/features/attendance/model"
	studentModel "tecnischool_backend/internals/features/people/students/model"
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

type fixture struct {
	group       *groupModel.GroupModel
	enrollments []enrollmentModel.EnrollmentModel
}

// seedFixture builds a group with n actively enrolled students.
func seedFixture(t *testing.T, db *gorm.DB, n int) fixture {
	t.Helper()

	course := courseModel.CourseModel{Name: "Electrics", Slug: "electrics", IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	level := courseModel.LevelModel{CourseID: course.ID, Name: "Level 1", Position: 1}
	require.NoError(t, db.Create(&level).Error)
	group := groupModel.GroupModel{
		LevelID:   level.ID,
		Code:      "ELEC-1A",
		Capacity:  20,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&group).Error)

	names := []string{"Alice", "Bruno", "Carla", "Diego", "Elena"}
	f := fixture{group: &group}
	for i := 0; i < n; i++ {
		u := userModel.UserModel{
			UserName: names[i],
			Email:    names[i] + "@example.com",
			Password: "x",
			FullName: names[i],
			IsActive: true,
		}
		require.NoError(t, db.Create(&u).Error)
		s := studentModel.StudentModel{UserID: u.ID, DocumentNumber: "S-" + names[i]}
		require.NoError(t, db.Create(&s).Error)
		e := enrollmentModel.EnrollmentModel{
			StudentID: s.ID, GroupID: group.ID, Status: enrollmentModel.StatusActive,
		}
		require.NoError(t, db.Create(&e).Error)
		f.enrollments = append(f.enrollments, e)
	}
	return f
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSaveBatch_UpsertsWithoutDuplicates(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 2)
	recorder := uuid.New()
	date := day(2026, 3, 2)

	first := []dto.BatchRecord{
		{EnrollmentID: f.enrollments[0].ID, Status: string(model.StatusPresent)},
		{EnrollmentID: f.enrollments[1].ID, Status: string(model.StatusAbsent)},
	}
	require.NoError(t, SaveBatch(db, f.group.ID, date, first, recorder))

	// second write for the same day overwrites, never duplicates
	second := []dto.BatchRecord{
		{EnrollmentID: f.enrollments[1].ID, Status: string(model.StatusLate), ArrivalTime: "08:17"},
	}
	require.NoError(t, SaveBatch(db, f.group.ID, date, second, recorder))

	var rows []model.AttendanceModel
	require.NoError(t, db.Order("date").Find(&rows).Error)
	assert.Len(t, rows, 2)

	var late model.AttendanceModel
	require.NoError(t, db.First(&late, "enrollment_id = ?", f.enrollments[1].ID).Error)
	assert.Equal(t, model.StatusLate, late.Status)
	require.NotNil(t, late.ArrivalTime)
	assert.Equal(t, "08:17:00", late.ArrivalTime.Format("15:04:05"))
}

func TestSaveBatch_IsAtomic(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 2)
	date := day(2026, 3, 2)

	records := []dto.BatchRecord{
		{EnrollmentID: f.enrollments[0].ID, Status: string(model.StatusPresent)},
		{EnrollmentID: f.enrollments[1].ID, Status: "SLEEPING"},
	}
	err := SaveBatch(db, f.group.ID, date, records, uuid.New())
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	var count int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&count).Error)
	assert.Zero(t, count, "a rejected batch must persist nothing")
}

func TestSaveBatch_RejectsForeignEnrollment(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 1)

	records := []dto.BatchRecord{
		{EnrollmentID: uuid.New(), Status: string(model.StatusPresent)},
	}
	err := SaveBatch(db, f.group.ID, day(2026, 3, 2), records, uuid.New())
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestGetDay_NilStatusWhenNotTaken(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 3)
	date := day(2026, 3, 2)

	records := []dto.BatchRecord{
		{EnrollmentID: f.enrollments[1].ID, Status: string(model.StatusPresent)},
	}
	require.NoError(t, SaveBatch(db, f.group.ID, date, records, uuid.New()))

	entries, err := GetDay(db, f.group.ID, date)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// ordered by student name
	assert.Equal(t, "Alice", entries[0].StudentName)
	assert.Equal(t, "Bruno", entries[1].StudentName)
	assert.Equal(t, "Carla", entries[2].StudentName)

	assert.Nil(t, entries[0].Status)
	require.NotNil(t, entries[1].Status)
	assert.Equal(t, string(model.StatusPresent), *entries[1].Status)
	assert.Nil(t, entries[2].Status)
}

func TestStats_CountsAndPercentage(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 2)
	recorder := uuid.New()

	days := []time.Time{day(2026, 3, 2), day(2026, 3, 4), day(2026, 3, 6), day(2026, 3, 9)}
	statuses := [][]model.AttendanceStatus{
		{model.StatusPresent, model.StatusAbsent},
		{model.StatusPresent, model.StatusPresent},
		{model.StatusLate, model.StatusExcused},
		{model.StatusPresent, model.StatusAbsent},
	}
	for i, d := range days {
		records := []dto.BatchRecord{
			{EnrollmentID: f.enrollments[0].ID, Status: string(statuses[i][0])},
			{EnrollmentID: f.enrollments[1].ID, Status: string(statuses[i][1])},
		}
		require.NoError(t, SaveBatch(db, f.group.ID, d, records, recorder))
	}

	stats, err := Stats(db, f.group.ID, day(2026, 3, 1), day(2026, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalClasses)
	require.Len(t, stats.Students, 2)

	byID := map[uuid.UUID]dto.StatsEntry{}
	for _, s := range stats.Students {
		byID[s.EnrollmentID] = s
	}

	first := byID[f.enrollments[0].ID]
	assert.Equal(t, int64(3), first.Present)
	assert.Equal(t, int64(1), first.Late)
	assert.Equal(t, "100.0", first.Percentage)

	second := byID[f.enrollments[1].ID]
	assert.Equal(t, int64(2), second.Present)
	assert.Equal(t, int64(2), second.Absent+second.Excused)
	assert.Equal(t, "50.0", second.Percentage)
}

func TestStats_ZeroClasses(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 2)

	stats, err := Stats(db, f.group.ID, day(2026, 3, 1), day(2026, 3, 31))
	require.NoError(t, err)
	assert.Zero(t, stats.TotalClasses)
	for _, s := range stats.Students {
		assert.Equal(t, "0.0", s.Percentage)
	}
}

func TestStats_RangeFilters(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db, 1)
	recorder := uuid.New()

	for _, d := range []time.Time{day(2026, 2, 27), day(2026, 3, 2), day(2026, 4, 1)} {
		records := []dto.BatchRecord{
			{EnrollmentID: f.enrollments[0].ID, Status: string(model.StatusPresent)},
		}
		require.NoError(t, SaveBatch(db, f.group.ID, d, records, recorder))
	}

	stats, err := Stats(db, f.group.ID, day(2026, 3, 1), day(2026, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalClasses)
	require.Len(t, stats.Students, 1)
	assert.Equal(t, int64(1), stats.Students[0].Present)
}
