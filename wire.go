//go:build wireinject
// +build wireinject

package main

import (
	"Shelved/cmd"
	"Shelved/database"
	"Shelved/internal/handlers"
	"Shelved/internal/middleware"
	"Shelved/internal/repository"
	"Shelved/internal/services"
	"Shelved/internal/storage"
	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewDriveRepository,
		repository.NewDiskRepository,
		repository.NewFolderRepository,
		repository.NewFileRepository,
		repository.NewFileVersionRepository,
		repository.NewPermissionRepository,
		storage.NewFactory,
		services.NewLogService,
		services.NewPermissionService,
		services.NewConflictService,
		services.NewStructureService,
		services.NewVersionService,
		services.NewDirectoryService,
		services.NewMoverService,
		services.NewTrashService,
		services.NewDriveService,
		services.NewJanitorService,
		handlers.NewDirectoryHandler,
		handlers.NewTransferHandler,
		handlers.NewTrashHandler,
		handlers.NewDriveHandler,
		middleware.NewAuthMiddleware,
		Provider,
	)
	return nil, nil
}
