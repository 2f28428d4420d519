package handlers

import (
	"Shelved/internal/mapper"
	"Shelved/internal/middleware"
	"Shelved/internal/models"
	"Shelved/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type DirectoryHandler struct {
	service services.DirectoryService
}

func NewDirectoryHandler(service services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

func (h *DirectoryHandler) ListDirectory(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	pageSize, _ := strconv.Atoi(c.Query("page_size", "0"))
	listing, err := h.service.ListDirectory(driveID, userID, services.ListDirectoryParams{
		FolderID: c.Query("folder_id"),
		Path:     c.Query("path"),
		PageSize: pageSize,
		Cursor:   c.Query("cursor"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listing)
}

func (h *DirectoryHandler) CreateFolder(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req struct {
		ID             string  `json:"id"`
		ParentFolderID string  `json:"parent_folder_id"`
		ParentPath     string  `json:"parent_path"`
		Name           string  `json:"name"`
		DiskID         string  `json:"disk_id"`
		ConflictPolicy string  `json:"conflict_policy"`
		Sovereign      bool    `json:"sovereign"`
		Notes          string  `json:"notes"`
		ExternalID     *string `json:"external_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	folder, err := h.service.CreateFolder(driveID, userID, services.CreateFolderParams{
		ID:             req.ID,
		ParentFolderID: req.ParentFolderID,
		ParentPath:     req.ParentPath,
		Name:           req.Name,
		DiskID:         req.DiskID,
		ConflictPolicy: models.ConflictPolicy(req.ConflictPolicy),
		Sovereign:      req.Sovereign,
		Notes:          req.Notes,
		ExternalID:     req.ExternalID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToFolderGetDTO(folder))
}

func (h *DirectoryHandler) CreateFile(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req struct {
		ID             string  `json:"id"`
		ParentFolderID string  `json:"parent_folder_id"`
		ParentPath     string  `json:"parent_path"`
		Name           string  `json:"name"`
		DiskID         string  `json:"disk_id"`
		FileSize       int64   `json:"file_size"`
		ConflictPolicy string  `json:"conflict_policy"`
		Notes          string  `json:"notes"`
		ExternalID     *string `json:"external_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	file, target, err := h.service.CreateFile(driveID, userID, services.CreateFileParams{
		ID:             req.ID,
		ParentFolderID: req.ParentFolderID,
		ParentPath:     req.ParentPath,
		Name:           req.Name,
		DiskID:         req.DiskID,
		FileSize:       req.FileSize,
		ConflictPolicy: models.ConflictPolicy(req.ConflictPolicy),
		Notes:          req.Notes,
		ExternalID:     req.ExternalID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"file":          mapper.ToFileGetDTO(file),
		"upload_target": target,
	})
}

func (h *DirectoryHandler) CompleteUpload(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	file, err := h.service.CompleteUpload(driveID, userID, c.Params("fileID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToFileGetDTO(file))
}

func (h *DirectoryHandler) RevertFileToVersion(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	file, err := h.service.RevertFileToVersion(driveID, userID, c.Params("fileID"), c.Params("versionID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToFileGetDTO(file))
}

func (h *DirectoryHandler) GetFolder(c *fiber.Ctx) error {
	driveID := c.Params("driveID")

	folder, err := h.service.GetFolderMetadata(driveID, c.Params("folderID"))
	if err != nil {
		return respondError(c, err)
	}
	if folder == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "folder not found"})
	}
	return c.JSON(mapper.ToFolderGetDTO(folder))
}

func (h *DirectoryHandler) GetFile(c *fiber.Ctx) error {
	driveID := c.Params("driveID")

	file, err := h.service.GetFileMetadata(driveID, c.Params("fileID"))
	if err != nil {
		return respondError(c, err)
	}
	if file == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	}
	return c.JSON(mapper.ToFileGetDTO(file))
}

func (h *DirectoryHandler) Translate(c *fiber.Ctx) error {
	driveID := c.Params("driveID")

	path := c.Query("path")
	if path == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "path is required"})
	}
	resource, err := h.service.Translate(driveID, path)
	if err != nil {
		return respondError(c, err)
	}
	if resource.Kind == services.ResourceFolder {
		return c.JSON(fiber.Map{"kind": "folder", "folder": mapper.ToFolderGetDTO(resource.Folder)})
	}
	return c.JSON(fiber.Map{"kind": "file", "file": mapper.ToFileGetDTO(resource.File)})
}
