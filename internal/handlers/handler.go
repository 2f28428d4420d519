package handlers

import (
	"Shelved/internal/apperr"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the engine's sentinel errors to HTTP statuses. Anything
// unrecognized is a 500.
func respondError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrProtectedResource):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrConflictAbort):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrInvalidTrashState):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrCrossDiskOperation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrCircularReference):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrStorageBackend):
		status = http.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
