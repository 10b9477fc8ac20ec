package database

import (
	"gorm.io/gorm"

	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	groupModel "tecnischool_backend/internals/features/academics/groups/model"
	attendanceModel "tecnischool_backend/internals/features/attendance/model"
	gradeModel "tecnischool_backend/internals/features/grades/model"
	notificationModel "tecnischool_backend/internals/features/notifications/model"
	guardianModel "tecnischool_backend/internals/features/people/guardians/model"
	studentModel "tecnischool_backend/internals/features/people/students/model"
	teacherModel "tecnischool_backend/internals/features/people/teachers/model"
	schoolModel "tecnischool_backend/internals/features/schools/model"
	settingModel "tecnischool_backend/internals/features/settings/model"
	userModel "tecnischool_backend/internals/features/users/user/model"
)

// Migrate creates or updates every table. Called from main when
// DB_AUTO_MIGRATE=true, and from test setups against their own DB handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.RoleModel{},
		&userModel.UserRoleModel{},

		&teacherModel.TeacherModel{},
		&guardianModel.GuardianModel{},
		&schoolModel.SchoolModel{},
		&schoolModel.AgreementModel{},
		&schoolModel.SchoolAgreementModel{},
		&schoolModel.ClassroomModel{},
		&studentModel.StudentModel{},
		&studentModel.StudentGuardianModel{},

		&courseModel.CourseModel{},
		&courseModel.LevelModel{},
		&groupModel.GroupModel{},
		&enrollmentModel.EnrollmentModel{},

		&attendanceModel.AttendanceModel{},
		&gradeModel.GradeModel{},
		&notificationModel.NotificationModel{},
		&settingModel.SettingModel{},
	)
}
