package handlers

import (
	"Shelved/internal/mapper"
	"Shelved/internal/middleware"
	"Shelved/internal/models"
	"Shelved/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type TrashHandler struct {
	service services.TrashService
}

func NewTrashHandler(service services.TrashService) *TrashHandler {
	return &TrashHandler{service: service}
}

func (h *TrashHandler) DeleteResource(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	resource, err := h.service.DeleteResource(driveID, userID, c.Params("resourceID"))
	if err != nil {
		return respondError(c, err)
	}
	if resource.Kind == services.ResourceFolder {
		return c.JSON(mapper.ToFolderGetDTO(resource.Folder))
	}
	return c.JSON(mapper.ToFileGetDTO(resource.File))
}

func (h *TrashHandler) RestoreFromTrash(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req struct {
		DestFolderID   *string `json:"dest_folder_id"`
		RestoreToPath  *string `json:"restore_to_path"`
		ConflictPolicy string  `json:"conflict_policy"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	result, err := h.service.RestoreFromTrash(driveID, userID, c.Params("resourceID"), services.RestoreParams{
		DestFolderID:  req.DestFolderID,
		RestoreToPath: req.RestoreToPath,
		Policy:        models.ConflictPolicy(req.ConflictPolicy),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func (h *TrashHandler) PermanentlyDelete(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	if err := h.service.PermanentlyDelete(driveID, userID, c.Params("resourceID")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *TrashHandler) EmptyTrash(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	if err := h.service.EmptyTrash(driveID, userID, c.Params("diskID")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
