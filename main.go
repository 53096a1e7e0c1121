package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"github.com/streamvid/adminweb/internal/pkg/env"
	"github.com/streamvid/adminweb/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()

	engine := html.New("./views", ".html")
	engine.AddFunc("money", func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	})

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	app.Use(recover.New(), requestid.New(), logger.New())

	// error reporting, enabled only when a DSN is configured
	if dsn := env.GetEnv("SENTRY_DSN", ""); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: env.GetEnv("APP_ENV", "prod"),
		})
		if err != nil {
			fiberlog.Warnf("sentry init failed: %v", err)
		} else {
			app.Use(sentryfiber.New(sentryfiber.Options{
				Repanic:         true,
				WaitForDelivery: false,
				Timeout:         3 * time.Second,
			}))
		}
	}

	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
