package service

import (
	"gorm.io/gorm"

	courseModel "tecnischool_backend/internals/features/academics/courses/model"
	enrollmentModel "tecnischool_backend/internals/features/academics/enrollments/model"
	"tecnischool_backend/internals/features/stats/dto"
)

// RevenueByCourse sums agreed prices of non-cancelled enrollments per active
// course, reached through the course's levels and their groups. Courses with
// no enrollments still appear with zero revenue.
func RevenueByCourse(db *gorm.DB) ([]dto.CourseRevenueEntry, error) {
	var entries []dto.CourseRevenueEntry
	err := db.Model(&courseModel.CourseModel{}).
		Select(`courses.id AS course_id,
			courses.name AS course_name,
			COALESCE(SUM(enrollments.agreed_price), 0) AS revenue,
			COUNT(DISTINCT enrollments.student_id) AS student_count`).
		Joins("LEFT JOIN levels ON levels.course_id = courses.id").
		Joins("LEFT JOIN groups ON groups.level_id = levels.id").
		Joins("LEFT JOIN enrollments ON enrollments.group_id = groups.id AND enrollments.status <> ?",
			enrollmentModel.StatusCancelled).
		Where("courses.is_active = ?", true).
		Group("courses.id, courses.name").
		Order("revenue DESC").
		Scan(&entries).Error
	return entries, err
}
