package handlers

import (
	"Shelved/internal/middleware"
	"Shelved/internal/models"
	"Shelved/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type DriveHandler struct {
	service services.DriveService
}

func NewDriveHandler(service services.DriveService) *DriveHandler {
	return &DriveHandler{service: service}
}

func (h *DriveHandler) CreateDrive(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	drive, err := h.service.CreateDrive(req.Name, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(drive)
}

func (h *DriveHandler) GetDrive(c *fiber.Ctx) error {
	drive, err := h.service.GetDrive(c.Params("driveID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(drive)
}

func (h *DriveHandler) CreateDisk(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	var req struct {
		Name              string `json:"name"`
		Type              string `json:"type"`
		Endpoint          string `json:"endpoint"`
		Bucket            string `json:"bucket"`
		Region            string `json:"region"`
		AccessKey         string `json:"access_key"`
		SecretKey         string `json:"secret_key"`
		UseSSL            bool   `json:"use_ssl"`
		AutoExpireSeconds *int64 `json:"auto_expire_seconds"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	disk, err := h.service.CreateDisk(driveID, userID, services.CreateDiskParams{
		Name:              req.Name,
		Type:              models.DiskType(req.Type),
		Endpoint:          req.Endpoint,
		Bucket:            req.Bucket,
		Region:            req.Region,
		AccessKey:         req.AccessKey,
		SecretKey:         req.SecretKey,
		UseSSL:            req.UseSSL,
		AutoExpireSeconds: req.AutoExpireSeconds,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(disk)
}

func (h *DriveHandler) GetDisk(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	disk, err := h.service.GetDisk(driveID, c.Params("diskID"), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(disk)
}

func (h *DriveHandler) ListDisks(c *fiber.Ctx) error {
	driveID := c.Params("driveID")
	userID := middleware.CurrentUserID(c)

	disks, err := h.service.ListDisks(driveID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(disks)
}
