package routers

import (
	"Shelved/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/", server.AuthMiddleware.RequireAuth)

	SetupDriveRouter(api, server)
	SetupDirectoryRouter(api, server)
	SetupTransferRouter(api, server)
	SetupTrashRouter(api, server)
	SetupJanitorRouter(api, server)
}
