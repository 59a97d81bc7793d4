package main

import (
	"blessindo/infra/grpc"
	"blessindo/infra/postgres"
	"blessindo/pkg/config"
	"blessindo/pkg/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const checkInterval = 15 * time.Second

// The health probe runs beside the API and reports whether the database
// behind it is reachable.
func main() {
	appConfig := config.Read()

	log, err := logger.New(appConfig.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.L().Info("Health probe starting...", zap.String("service", appConfig.ServiceName))

	pgRepository, err := postgres.NewPgRepository(appConfig.DatabaseDSN())
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pgRepository.Close()

	grpcServer, err := grpc.NewServer(fmt.Sprintf(":%s", appConfig.GRPCPort))
	if err != nil {
		zap.L().Fatal("failed to create grpc server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitor := grpc.NewMonitor(grpcServer.Health(), pgRepository, appConfig.ServiceName, checkInterval)
	go monitor.Run(ctx)

	go func() {
		if err := grpcServer.Start(); err != nil {
			zap.L().Error("failed to start grpc server", zap.Error(err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	zap.L().Info("Shutting down health probe...")
	cancel()
	grpcServer.GracefulStop()
	zap.L().Info("Health probe stopped")
}
