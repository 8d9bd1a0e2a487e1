package main

import (
	"time"

	"blogly/internal/config"
	"blogly/internal/handlers"
	"blogly/internal/metrics"
	"blogly/internal/middleware"
	"blogly/internal/repositories"
	"blogly/internal/services"
	"blogly/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires services and handlers over db and returns the Fiber app.
// publisher may be nil, in which case no events are sent.
func NewApp(cfg *config.Config, db *gorm.DB, publisher handlers.EventPublisher, m *metrics.Metrics) *fiber.App {
	uow := repositories.NewGORMUnitOfWork(db)
	validate := validation.New()
	reconciler := services.NewReconciler(cfg.StrictNames)

	userService := services.NewUserService(uow, validate)
	postService := services.NewPostService(uow, validate, reconciler, services.WithRecentLimit(cfg.RecentPostsLimit))
	tagService := services.NewTagService(uow, validate, reconciler)

	userHandler := handlers.NewUserHandler(userService, postService, publisher, m)
	postHandler := handlers.NewPostHandler(postService, publisher, m)
	tagHandler := handlers.NewTagHandler(tagService, publisher, m)

	app := fiber.New(fiber.Config{
		AppName:      "blogly",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(m))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": publisher != nil,
		}
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			status["status"] = "unhealthy"
			status["database"] = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		status["database"] = "connected"
		return c.JSON(status)
	})
	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	apiV1 := app.Group("/api/v1")
	userHandler.RegisterRoutes(apiV1)
	postHandler.RegisterRoutes(apiV1)
	tagHandler.RegisterRoutes(apiV1)

	return app
}
