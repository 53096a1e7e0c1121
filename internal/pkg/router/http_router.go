package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/streamvid/adminweb/app/controllers"
	"github.com/streamvid/adminweb/internal/pkg/session"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session store; every list screen keeps its pipeline state there
	session.NewSessionStore()

	// shared backend client
	controllers.InitControllers()

	h.registerScreenRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
