package handlers

import (
	"Shelved/internal/mapper"
	"Shelved/internal/middleware"
	"Shelved/internal/models"
	"Shelved/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	mover services.MoverService
}

func NewTransferHandler(mover services.MoverService) *TransferHandler {
	return &TransferHandler{mover: mover}
}

type transferRequest struct {
	DestFolderID   string `json:"dest_folder_id"`
	ConflictPolicy string `json:"conflict_policy"`
}

func (h *TransferHandler) MoveFile(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	file, err := h.mover.MoveFile(driveID, userID, c.Params("fileID"), req.DestFolderID, models.ConflictPolicy(req.ConflictPolicy))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToFileGetDTO(file))
}

func (h *TransferHandler) MoveFolder(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	folder, err := h.mover.MoveFolder(driveID, userID, c.Params("folderID"), req.DestFolderID, models.ConflictPolicy(req.ConflictPolicy))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToFolderGetDTO(folder))
}

func (h *TransferHandler) CopyFile(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	file, err := h.mover.CopyFile(driveID, userID, c.Params("fileID"), req.DestFolderID, models.ConflictPolicy(req.ConflictPolicy))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToFileGetDTO(file))
}

func (h *TransferHandler) CopyFolder(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	folder, err := h.mover.CopyFolder(driveID, userID, c.Params("folderID"), req.DestFolderID, models.ConflictPolicy(req.ConflictPolicy))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToFolderGetDTO(folder))
}

type renameRequest struct {
	Name           string `json:"name"`
	ConflictPolicy string `json:"conflict_policy"`
}

func (h *TransferHandler) RenameFile(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req renameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	file, err := h.mover.RenameFile(driveID, userID, c.Params("fileID"), req.Name, models.ConflictPolicy(req.ConflictPolicy))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToFileGetDTO(file))
}

func (h *TransferHandler) RenameFolder(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req renameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	folder, err := h.mover.RenameFolder(driveID, userID, c.Params("folderID"), req.Name, models.ConflictPolicy(req.ConflictPolicy))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToFolderGetDTO(folder))
}
