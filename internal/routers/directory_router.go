package routers

import (
	"Shelved/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupDirectoryRouter(router fiber.Router, server *cmd.Server) {
	handler := server.DirectoryHandler
	router.Get("/drives/:driveID/directory", handler.ListDirectory)
	router.Get("/drives/:driveID/translate", handler.Translate)
	router.Post("/drives/:driveID/folders", handler.CreateFolder)
	router.Get("/drives/:driveID/folders/:folderID", handler.GetFolder)
	router.Post("/drives/:driveID/files", handler.CreateFile)
	router.Get("/drives/:driveID/files/:fileID", handler.GetFile)
	router.Post("/drives/:driveID/files/:fileID/complete", handler.CompleteUpload)
	router.Post("/drives/:driveID/files/:fileID/versions/:versionID/revert", handler.RevertFileToVersion)
}
