// handlers/app.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"tryout-intake/config"
	"tryout-intake/middleware"
	"tryout-intake/services"
)

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(cfg *config.Config, svc *services.ApplicationService, log *zap.SugaredLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "tryout-intake",
		BodyLimit:             cfg.BodyLimitKB * 1024,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       86400, // 24 hours
	}))

	SetupApplicationRoutes(app, svc)

	if cfg.HasStaticDir() {
		app.Use("/", filesystem.New(filesystem.Config{
			Root:         http.Dir(cfg.StaticDir),
			Index:        "index.html",
			MaxAge:       3600,
			NotFoundFile: "index.html",
		}))
	}

	return app
}
