package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	database "tecnischool_backend/internals/databases"
	"tecnischool_backend/internals/features/settings/model"
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

func TestGet_DefaultsWhenAbsent(t *testing.T) {
	db := newTestDB(t)

	open, err := GradesOpen(db, time.Now())
	require.NoError(t, err)
	assert.True(t, open, "grades default to open")

	january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	v, err := Get(db, model.KeyCurrentPeriod, january)
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))

	september := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	v, err = Get(db, model.KeyCurrentPeriod, september)
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))
}

func TestGet_StoredValueWins(t *testing.T) {
	db := newTestDB(t)
	admin := uuid.New()

	// stored period 2 beats the month-derived 1
	_, err := Set(db, model.KeyCurrentPeriod, datatypes.JSON("2"), admin)
	require.NoError(t, err)

	january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	v, err := Get(db, model.KeyCurrentPeriod, january)
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))
}

func TestGet_UnknownKey(t *testing.T) {
	db := newTestDB(t)
	_, err := Get(db, "NO_SUCH_KEY", time.Now())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestSet_UpsertsSingleRow(t *testing.T) {
	db := newTestDB(t)
	admin := uuid.New()

	_, err := Set(db, model.KeyGradesOpen, datatypes.JSON("false"), admin)
	require.NoError(t, err)
	stored, err := Set(db, model.KeyGradesOpen, datatypes.JSON("true"), admin)
	require.NoError(t, err)
	assert.Equal(t, "true", string(stored.Value))

	var count int64
	require.NoError(t, db.Model(&model.SettingModel{}).
		Where("key = ?", model.KeyGradesOpen).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSet_RejectsInvalidJSON(t *testing.T) {
	db := newTestDB(t)
	_, err := Set(db, model.KeyGradesOpen, datatypes.JSON("{broken"), uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestGetAll_MergesDefaultsAndRows(t *testing.T) {
	db := newTestDB(t)
	_, err := Set(db, model.KeyGradesOpen, datatypes.JSON("false"), uuid.New())
	require.NoError(t, err)

	all, err := GetAll(db, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "false", string(all[model.KeyGradesOpen]))
	assert.Equal(t, "2", string(all[model.KeyCurrentPeriod]))
}

func TestGradesOpen_ReadsStoredFlag(t *testing.T) {
	db := newTestDB(t)
	_, err := Set(db, model.KeyGradesOpen, datatypes.JSON("false"), uuid.New())
	require.NoError(t, err)

	open, err := GradesOpen(db, time.Now())
	require.NoError(t, err)
	assert.False(t, open)
}
