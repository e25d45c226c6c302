package webapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amirasaad/bank/config"
	"github.com/amirasaad/bank/pkg/domain/account"
	"github.com/amirasaad/bank/pkg/registry"
	"github.com/amirasaad/bank/pkg/repository"
)

// Deps bundles the collaborators the handlers need. Everything is injected;
// there are no package-level singletons.
type Deps struct {
	Registry    *registry.Registry
	Repo        repository.AccountsRepository
	Whitelist   account.WhitelistChecker
	Notifier    account.Notifier
	PromoPolicy account.PromoPolicy
	Logger      *slog.Logger
	Config      *config.App
}

// NewApp builds the Fiber application with middleware and all routes.
func NewApp(deps *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default to 500 if status code cannot be determined
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	AccountRoutes(app, deps)
	TransferRoutes(app, deps)

	return app
}
