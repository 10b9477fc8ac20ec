package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// TranslateDBError maps persistence errors to HTTP errors.
// Record-not-found → 404 with notFoundMsg, unique violation → 400,
// anything else → 500 so the central handler logs it as a server fault.
func TranslateDBError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	case IsUniqueViolation(err):
		return fiber.NewError(fiber.StatusBadRequest, "Duplicate value violates a unique constraint")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
}
