package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/constants"
	"tecnischool_backend/internals/features/schools/controller"
	authMiddleware "tecnischool_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	sc := controller.NewSchoolController(db)
	ac := controller.NewAgreementController(db)
	cc := controller.NewClassroomController(db)

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorStaff("school records"), constants.StaffRoles...)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("school management"), constants.AdminOnly...)

	schools := api.Group("/schools")
	schools.Get("/", staffOnly, sc.List)
	schools.Get("/:id", staffOnly, sc.GetByID)
	schools.Post("/", adminOnly, sc.Create)
	schools.Put("/:id", adminOnly, sc.Update)
	schools.Delete("/:id", adminOnly, sc.Deactivate)
	schools.Post("/:id/agreements", adminOnly, sc.LinkAgreement)
	schools.Delete("/:id/agreements/:agreementId", adminOnly, sc.UnlinkAgreement)

	agreements := api.Group("/agreements")
	agreements.Get("/", staffOnly, ac.List)
	agreements.Get("/:id", staffOnly, ac.GetByID)
	agreements.Post("/", adminOnly, ac.Create)
	agreements.Put("/:id", adminOnly, ac.Update)

	classrooms := api.Group("/classrooms")
	classrooms.Get("/", staffOnly, cc.List)
	classrooms.Post("/", adminOnly, cc.Create)
	classrooms.Put("/:id", adminOnly, cc.Update)
	classrooms.Delete("/:id", adminOnly, cc.Deactivate)
}
