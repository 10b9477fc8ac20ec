package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	database "tecnischool_backend/internals/databases"
	"tecnischool_backend/internals/features/users/user/model"
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

func seedRoles(t *testing.T, db *gorm.DB, names ...string) map[string]model.RoleModel {
	t.Helper()
	out := make(map[string]model.RoleModel, len(names))
	for _, name := range names {
		r := model.RoleModel{Name: name}
		require.NoError(t, db.Create(&r).Error)
		out[name] = r
	}
	return out
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.UserModel {
	t.Helper()
	u := model.UserModel{
		UserName: name,
		Email:    name + "@example.com",
		Password: "x",
		FullName: name,
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func roleNamesOf(t *testing.T, db *gorm.DB, user *model.UserModel) []string {
	t.Helper()
	var loaded model.UserModel
	require.NoError(t, db.Preload("Roles").First(&loaded, "id = ?", user.ID).Error)
	return loaded.RoleNames()
}

func TestGrantRole_Idempotent(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db, constants.RoleTeacher)
	user := seedUser(t, db, "mgarcia")

	require.NoError(t, GrantRole(db, user.ID, constants.RoleTeacher))
	require.NoError(t, GrantRole(db, user.ID, constants.RoleTeacher))

	var count int64
	require.NoError(t, db.Model(&model.UserRoleModel{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGrantRole_UnknownRole(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "mgarcia")

	err := GrantRole(db, user.ID, "JANITOR")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestReplaceRoles_SwapsSet(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db, constants.RoleAdmin, constants.RoleTeacher, constants.RoleStudent)
	user := seedUser(t, db, "mgarcia")
	require.NoError(t, GrantRole(db, user.ID, constants.RoleStudent))

	require.NoError(t, ReplaceRoles(db, user.ID, []string{constants.RoleAdmin, constants.RoleTeacher}))

	assert.ElementsMatch(t,
		[]string{constants.RoleAdmin, constants.RoleTeacher},
		roleNamesOf(t, db, user))
}

func TestReplaceRoles_UnknownRole(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db, constants.RoleTeacher)
	user := seedUser(t, db, "mgarcia")
	require.NoError(t, GrantRole(db, user.ID, constants.RoleTeacher))

	err := ReplaceRoles(db, user.ID, []string{constants.RoleTeacher, "JANITOR"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// failed replace leaves the old set intact
	assert.ElementsMatch(t, []string{constants.RoleTeacher}, roleNamesOf(t, db, user))
}

func TestReplaceRoles_RepeatedNamesCountOnce(t *testing.T) {
	db := newTestDB(t)
	seedRoles(t, db, constants.RoleAdmin)
	user := seedUser(t, db, "mgarcia")

	require.NoError(t, ReplaceRoles(db, user.ID, []string{constants.RoleAdmin, constants.RoleAdmin}))
	assert.ElementsMatch(t, []string{constants.RoleAdmin}, roleNamesOf(t, db, user))
}

func TestReplaceRoles_RollsBackOnFailedInsert(t *testing.T) {
	db := newTestDB(t)
	roles := seedRoles(t, db, constants.RoleAdmin, constants.RoleTeacher, constants.RoleStudent)
	user := seedUser(t, db, "mgarcia")
	require.NoError(t, GrantRole(db, user.ID, constants.RoleStudent))

	// make the insert of one target role blow up after the delete succeeded
	// (the role id is inlined because sqlite rejects bind parameters in DDL)
	require.NoError(t, db.Exec(fmt.Sprintf(`
		CREATE TRIGGER reject_teacher_link BEFORE INSERT ON user_roles
		WHEN NEW.role_id = '%s'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`,
		roles[constants.RoleTeacher].ID)).Error)

	err := ReplaceRoles(db, user.ID, []string{constants.RoleAdmin, constants.RoleTeacher})
	require.Error(t, err)

	// the transaction must restore the old set, not leave the user role-less
	assert.ElementsMatch(t, []string{constants.RoleStudent}, roleNamesOf(t, db, user))
}
