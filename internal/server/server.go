package server

import (
	"blessindo/app/category"
	"blessindo/app/client"
	"blessindo/app/dashboard"
	"blessindo/app/product"
	"blessindo/app/setting"
	"blessindo/internal/middleware"
	"blessindo/pkg/auth"
	"blessindo/pkg/events"
	"blessindo/pkg/storage"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Multipart framing on top of the largest accepted file.
const bodyOverhead = 1 << 20

type Repository interface {
	category.Repository
	product.Repository
	client.Repository
	setting.Repository
	dashboard.Repository
}

type Deps struct {
	APIPrefix        string
	CORSAllowOrigins string
	Repository       Repository
	Images           *storage.ImageStore
	Credentials      auth.Credentials
	Tokens           *auth.TokenIssuer
	// EventPublisher may be nil; events are then not published.
	EventPublisher events.Publisher
	Logger         *zap.Logger
}

func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:           5 * time.Second,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		Concurrency:           256 * 1024,
		BodyLimit:             int(deps.Images.MaxBytes()) + bodyOverhead,
		ErrorHandler:          newErrorHandler(deps.Images.MaxBytes()),
		DisableStartupMessage: true,
	})

	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.NewRequestLoggerMiddleware(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	registerRoutes(app, deps)

	app.Use(notFound)

	return app
}
