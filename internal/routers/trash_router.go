package routers

import (
	"Shelved/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupTrashRouter(router fiber.Router, server *cmd.Server) {
	handler := server.TrashHandler
	router.Delete("/drives/:driveID/resources/:resourceID", handler.DeleteResource)
	router.Delete("/drives/:driveID/resources/:resourceID/permanent", handler.PermanentlyDelete)
	router.Post("/drives/:driveID/resources/:resourceID/restore", handler.RestoreFromTrash)
	router.Post("/drives/:driveID/disks/:diskID/trash/empty", handler.EmptyTrash)
}
