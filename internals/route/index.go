package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "tecnischool_backend/internals/features/academics/courses/route"
	enrollmentRoute "tecnischool_backend/internals/features/academics/enrollments/route"
	groupRoute "tecnischool_backend/internals/features/academics/groups/route"
	attendanceRoute "tecnischool_backend/internals/features/attendance/route"
	gradeRoute "tecnischool_backend/internals/features/grades/route"
	notificationRoute "tecnischool_backend/internals/features/notifications/route"
	guardianRoute "tecnischool_backend/internals/features/people/guardians/route"
	studentRoute "tecnischool_backend/internals/features/people/students/route"
	teacherRoute "tecnischool_backend/internals/features/people/teachers/route"
	schoolRoute "tecnischool_backend/internals/features/schools/route"
	settingRoute "tecnischool_backend/internals/features/settings/route"
	statsRoute "tecnischool_backend/internals/features/stats/route"
	authRoute "tecnischool_backend/internals/features/users/auth/route"
	userRoute "tecnischool_backend/internals/features/users/user/route"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature. /api/auth/login is the only public
// endpoint; everything under /api requires a valid token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)
	teacherRoute.TeacherRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	guardianRoute.GuardianRoutes(api, db)

	courseRoute.CourseRoutes(api, db)
	groupRoute.GroupRoutes(api, db)
	enrollmentRoute.EnrollmentRoutes(api, db)

	attendanceRoute.AttendanceRoutes(api, db)
	gradeRoute.GradeRoutes(api, db)

	schoolRoute.SchoolRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
	settingRoute.SettingRoutes(api, db)
	statsRoute.StatsRoutes(api, db)
}
