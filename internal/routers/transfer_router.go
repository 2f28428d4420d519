package routers

import (
	"Shelved/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupTransferRouter(router fiber.Router, server *cmd.Server) {
	handler := server.TransferHandler
	router.Post("/drives/:driveID/files/:fileID/move", handler.MoveFile)
	router.Post("/drives/:driveID/files/:fileID/copy", handler.CopyFile)
	router.Post("/drives/:driveID/files/:fileID/rename", handler.RenameFile)
	router.Post("/drives/:driveID/folders/:folderID/move", handler.MoveFolder)
	router.Post("/drives/:driveID/folders/:folderID/copy", handler.CopyFolder)
	router.Post("/drives/:driveID/folders/:folderID/rename", handler.RenameFolder)
}
