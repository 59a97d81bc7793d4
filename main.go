package main

import (
	"blessindo/infra/postgres"
	"blessindo/infra/rabbitmq"
	"blessindo/internal/server"
	"blessindo/pkg/auth"
	"blessindo/pkg/config"
	"blessindo/pkg/events"
	"blessindo/pkg/logger"
	"blessindo/pkg/storage"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()

	log, err := logger.New(appConfig.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := appConfig.Validate(); err != nil {
		zap.L().Fatal("Invalid configuration", zap.Error(err))
	}

	zap.L().Info("app starting...",
		zap.String("env", appConfig.AppEnv),
		zap.String("storage", appConfig.StorageDriver),
		zap.Bool("events", appConfig.RabbitMQURL != ""),
	)

	pgRepository, err := postgres.NewPgRepository(appConfig.DatabaseDSN())
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	backend, err := newStorage(appConfig)
	if err != nil {
		zap.L().Fatal("Failed to initialise upload storage", zap.Error(err))
	}

	eventPublisher := newEventPublisher(appConfig)

	app := server.New(server.Deps{
		APIPrefix:        appConfig.APIPrefix,
		CORSAllowOrigins: appConfig.CORSAllowOrigins,
		Repository:       pgRepository,
		Images:           storage.NewImageStore(backend, appConfig.UploadMaxBytes),
		Credentials:      auth.Credentials{Username: appConfig.AdminUsername, Password: appConfig.AdminPassword},
		Tokens:           auth.NewTokenIssuer(appConfig.JWTSecret, appConfig.JWTTTL),
		EventPublisher:   eventPublisher,
		Logger:           log,
	})

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app, func() {
		if eventPublisher != nil {
			if err := eventPublisher.Close(); err != nil {
				zap.L().Error("Failed to close event publisher", zap.Error(err))
			}
		}
		if err := backend.Close(); err != nil {
			zap.L().Error("Failed to close upload storage", zap.Error(err))
		}
		if err := pgRepository.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
	})
}

func newStorage(appConfig *config.AppConfig) (fiber.Storage, error) {
	if appConfig.StorageDriver == config.StorageDriverS3 {
		return storage.NewS3(storage.S3Config{
			Endpoint:  appConfig.AWSEndpoint,
			Bucket:    appConfig.AWSBucket,
			Region:    appConfig.AWSDefaultRegion,
			AccessKey: appConfig.AWSAccessKey,
			SecretKey: appConfig.AWSSecretKey,
		}), nil
	}

	return storage.NewDisk(appConfig.UploadDir)
}

// newEventPublisher returns nil when events are disabled or the broker is
// unreachable; the API keeps serving either way.
func newEventPublisher(appConfig *config.AppConfig) events.Publisher {
	if appConfig.RabbitMQURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := rabbitmq.NewCatalogPublisher(ctx, appConfig.RabbitMQURL, appConfig.ServiceName)
	if err != nil {
		zap.L().Error("Catalog events disabled", zap.Error(err))
		return nil
	}

	return publisher
}

func gracefulShutdown(app *fiber.App, cleanup func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	cleanup()

	zap.L().Info("Server gracefully stopped")
}
