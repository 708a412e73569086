package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"lifelink/internal/config"
	"lifelink/internal/ids"
	applog "lifelink/internal/log"
	"lifelink/internal/repos"
	"lifelink/internal/services"
)

const accessLogFormat = `{"ts":"${time}","kind":"access","req_id":"${locals:requestid}","ip":"${ip}","method":"${method}","path":"${path}","status":${status},"latency":"${latency}"}` + "\n"

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(cfg config.Config, store *repos.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "LifeLink API",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	auth := services.NewAuthService(store)

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: ids.NanoID}))
	app.Use(logger.New(logger.Config{
		Format:     accessLogFormat,
		TimeFormat: time.RFC3339,
		Output:     applog.Writer(),
	}))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMin,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return message(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	}))
	app.Use(AttachUser(auth))

	Register(app, NewDeps(store, cfg, auth))
	return app
}

// Register mounts the API routes.
func Register(app *fiber.App, deps *Deps) {
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("LifeLink API is running") })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api")

	// Auth (login throttled)
	authH := deps.AuthHandler
	api.Post("/auth/signup", authH.Signup)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return message(c, fiber.StatusTooManyRequests, "Too many attempts. Please try again later.")
		},
	}), authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/me", authH.Me)

	// Reads
	dir := deps.DirectoryHandler
	api.Get("/donors", dir.Donors)
	api.Get("/history/:donorId", dir.History)
	api.Get("/activity", dir.Activity)
	api.Get("/stats", dir.Stats)
	api.Get("/requests", deps.RequestHandler.List)
	api.Get("/inventory", deps.InventoryHandler.List)

	// Lifecycle
	requireUser := RequireUser(deps.Auth)
	api.Post("/requests", requireUser, deps.RequestHandler.Create)
	api.Post("/respond", requireUser, deps.LifecycleHandler.Respond)
	api.Post("/fulfill", requireUser, deps.LifecycleHandler.Fulfill)
	api.Post("/inventory/update", requireUser, deps.InventoryHandler.Update)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return message(c, fiber.StatusNotFound, "Not found")
	})
}
