package cmd

import (
	"Shelved/internal/handlers"
	"Shelved/internal/middleware"
	"Shelved/internal/services"
)

type Server struct {
	DirectoryService services.DirectoryService
	DirectoryHandler *handlers.DirectoryHandler
	MoverService     services.MoverService
	TransferHandler  *handlers.TransferHandler
	TrashService     services.TrashService
	TrashHandler     *handlers.TrashHandler
	DriveService     services.DriveService
	DriveHandler     *handlers.DriveHandler
	LogService       services.LogService
	JanitorService   *services.Janitor
	AuthMiddleware   *middleware.AuthMiddleware
}

func NewServer(
	directoryService services.DirectoryService,
	directoryHandler *handlers.DirectoryHandler,
	moverService services.MoverService,
	transferHandler *handlers.TransferHandler,
	trashService services.TrashService,
	trashHandler *handlers.TrashHandler,
	driveService services.DriveService,
	driveHandler *handlers.DriveHandler,
	logService services.LogService,
	janitorService *services.Janitor,
	authMiddleware *middleware.AuthMiddleware,
) *Server {
	return &Server{
		DirectoryService: directoryService,
		DirectoryHandler: directoryHandler,
		MoverService:     moverService,
		TransferHandler:  transferHandler,
		TrashService:     trashService,
		TrashHandler:     trashHandler,
		DriveService:     driveService,
		DriveHandler:     driveHandler,
		LogService:       logService,
		JanitorService:   janitorService,
		AuthMiddleware:   authMiddleware,
	}
}
