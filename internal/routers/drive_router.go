package routers

import (
	"Shelved/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupDriveRouter(router fiber.Router, server *cmd.Server) {
	handler := server.DriveHandler
	router.Post("/drives", handler.CreateDrive)
	router.Get("/drives/:driveID", handler.GetDrive)
	router.Post("/drives/:driveID/disks", handler.CreateDisk)
	router.Get("/drives/:driveID/disks", handler.ListDisks)
	router.Get("/drives/:driveID/disks/:diskID", handler.GetDisk)
}
