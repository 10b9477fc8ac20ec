package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tecnischool_backend/internals/features/stats/service"
	helper "tecnischool_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// GET /api/stats/financial/revenue-by-course
func (sc *StatsController) RevenueByCourse(c *fiber.Ctx) error {
	entries, err := service.RevenueByCourse(sc.DB)
	if err != nil {
		log.Printf("[ERROR] revenue by course: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute revenue report")
	}
	return helper.Success(c, "Revenue report retrieved", entries)
}
