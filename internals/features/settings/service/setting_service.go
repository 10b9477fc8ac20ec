package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tecnischool_backend/internals/features/settings/model"
)

// defaultValue returns the built-in value for a known key, or nil when the
// key has no default. A stored row always wins over these.
func defaultValue(key string, now time.Time) datatypes.JSON {
	switch key {
	case model.KeyGradesOpen:
		return datatypes.JSON("true")
	case model.KeyCurrentPeriod:
		period := 1
		if now.Month() >= time.July {
			period = 2
		}
		return datatypes.JSON(fmt.Sprintf("%d", period))
	}
	return nil
}

// Get resolves a setting by key. Stored values win; known keys fall back to
// their default when no row exists.
func Get(db *gorm.DB, key string, now time.Time) (datatypes.JSON, error) {
	var setting model.SettingModel
	err := db.Where("key = ?", key).First(&setting).Error
	if err == nil {
		return setting.Value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if def := defaultValue(key, now); def != nil {
		return def, nil
	}
	return nil, fiber.NewError(fiber.StatusNotFound, "Setting not found")
}

// GetAll returns every stored setting, with defaults injected for known keys
// that have no row.
func GetAll(db *gorm.DB, now time.Time) (map[string]datatypes.JSON, error) {
	var settings []model.SettingModel
	if err := db.Find(&settings).Error; err != nil {
		return nil, err
	}

	out := make(map[string]datatypes.JSON, len(settings)+2)
	for _, key := range []string{model.KeyGradesOpen, model.KeyCurrentPeriod} {
		out[key] = defaultValue(key, now)
	}
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out, nil
}

// Set stores a setting value, creating the row when absent.
func Set(db *gorm.DB, key string, value datatypes.JSON, updatedBy uuid.UUID) (*model.SettingModel, error) {
	if !json.Valid(value) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Value must be valid JSON")
	}

	setting := model.SettingModel{
		Key:       key,
		Value:     value,
		UpdatedBy: &updatedBy,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}

	// re-read so upserts return the persisted row, not the insert candidate
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// GradesOpen reports whether grade writes are currently allowed.
func GradesOpen(db *gorm.DB, now time.Time) (bool, error) {
	value, err := Get(db, model.KeyGradesOpen, now)
	if err != nil {
		return false, err
	}
	var open bool
	if err := json.Unmarshal(value, &open); err != nil {
		return false, fmt.Errorf("setting %s holds a non-boolean value: %w", model.KeyGradesOpen, err)
	}
	return open, nil
}
