package handler

import (
	"errors"

	"go-mof-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// statusCodeFor maps the service error taxonomy onto HTTP status codes. The
// transport reports the error kind and message; nothing is swallowed.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, service.ErrMofNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateSerial),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrItemAlreadyPicked),
		errors.Is(err, service.ErrItemAlreadyVerified):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrPartNumberMismatch),
		errors.Is(err, service.ErrItemNotInMof),
		errors.Is(err, service.ErrItemNotPicked):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadRequest
	}
}

func serviceError(c *fiber.Ctx, err error) error {
	return c.Status(statusCodeFor(err)).JSON(fiber.Map{"error": err.Error()})
}

// Helper untuk ambil User ID dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("missing user context")
	}
	return uuid.Parse(raw.(string))
}
