package handlers

import (
	"errors"
	"fmt"
	"log"

	"hotelmenu/internal/repositories"
	"hotelmenu/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps service and repository errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, repositories.ErrMenuItemNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrCategoryInUse),
		errors.Is(err, services.ErrDuplicateCategoryName),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidGroup),
		errors.Is(err, services.ErrInvalidCategoryRef),
		errors.Is(err, services.ErrUnknownTag),
		errors.Is(err, services.ErrNegativePrice):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError logs the error and writes the JSON error body. Internal
// failures are reported with a generic message so no detail leaks.
func respondError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{
			"message": message,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// respondValidationErrors writes a 400 with one message per failed field.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
