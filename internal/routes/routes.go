package routes

import (
	"time"

	"github.com/denonce-tg/signalement-api/internal/config"
	"github.com/denonce-tg/signalement-api/internal/handlers"
	"github.com/denonce-tg/signalement-api/internal/middleware"
	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	signalementHandler *handlers.SignalementHandler,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Service banner
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Dénonciation Anonyme",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"public": "/api/declarations",
				"admin":  "/api/admin",
				"health": "/api/health",
			},
		})
	})

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Public surface: anonymous by design, no auth and no rate limit.
	declarations := api.Group("/declarations")
	declarations.Post("/", signalementHandler.Create)
	declarations.Get("/", signalementHandler.List)
	declarations.Get("/categories", signalementHandler.ListCategories)
	declarations.Get("/suivi/:codeSuivi", signalementHandler.TrackByCode)
	declarations.Get("/statut/:codeSuivi", signalementHandler.StatutByCode)
	declarations.Post("/:id/vote", signalementHandler.Vote)
	declarations.Post("/:id/commentaires", signalementHandler.AddCommentaire)
	declarations.Get("/:id/commentaires", signalementHandler.ListCommentaires)

	// Login is public but brute-force limited: 10 req/min per IP.
	api.Post("/admin/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	// Everything else under /api/admin requires a valid token resolving to
	// an active administrator. Registered after the login route so the
	// group middleware never sees it.
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminContext(authService))

	admin.Get("/me", authHandler.Me)
	admin.Get("/dashboard", adminHandler.Dashboard)

	admin.Get("/categories", adminHandler.ListCategories)
	admin.Post("/categories", middleware.SuperAdminRequired(), adminHandler.CreateCategorie)
	admin.Patch("/categories/:id", middleware.SuperAdminRequired(), adminHandler.UpdateCategorie)

	admin.Get("/statuts", adminHandler.ListStatuts)
	admin.Post("/statuts", middleware.SuperAdminRequired(), adminHandler.CreateStatut)

	admin.Get("/signalements", adminHandler.ListSignalements)
	admin.Get("/signalements/:id", adminHandler.SignalementDetail)
	admin.Patch("/signalements/:id/statut", adminHandler.ChangeStatut)

	admin.Get("/administrateurs", middleware.SuperAdminRequired(), adminHandler.ListAdmins)
	admin.Post("/administrateurs", middleware.SuperAdminRequired(), adminHandler.CreateAdmin)
}
