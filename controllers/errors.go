package controllers

import (
	"errors"

	"inventory-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// validationError mirrors the {"detail": [...]} payload the admin
// frontend expects for rejected input.
func validationError(ctx *fiber.Ctx, details ...string) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": details,
	})
}

// stockError maps repository errors onto the HTTP statuses of the
// stock endpoints: 404 unknown record, 409 stale version, 422 bad
// quantity, 500 anything else.
func stockError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": []string{"record not found"},
		})
	case errors.Is(err, repositories.ErrVersionConflict):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"detail": []string{err.Error()},
		})
	case errors.Is(err, repositories.ErrInsufficientStock), errors.Is(err, repositories.ErrInvalidQuantity):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": []string{err.Error()},
		})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
