package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/operacoes-server/api"
	"github.com/carson-networks/operacoes-server/internal/config"
	"github.com/carson-networks/operacoes-server/internal/logging"
	"github.com/carson-networks/operacoes-server/internal/service"
	"github.com/carson-networks/operacoes-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.SetFormatter(logger.Formatter)
	logger.Info("operacoes-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Warn("logging.SetLevel")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	svc := service.NewService(dbStorage)

	httpRest := api.Rest{
		Logger:  logger,
		Host:    "0.0.0.0",
		Port:    envConfig.APIPort,
		Service: svc,
		Storage: dbStorage,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	logger.Info("operacoes-server stopped")
}
