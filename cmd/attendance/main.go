package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/snsce/attendance/internal/pkg/config"
	"github.com/snsce/attendance/internal/pkg/database"
	"github.com/snsce/attendance/internal/pkg/health"
	"github.com/snsce/attendance/internal/pkg/logger"
	"github.com/snsce/attendance/internal/pkg/middleware"
	"github.com/snsce/attendance/internal/pkg/nsq"
	"github.com/snsce/attendance/services/campus/gateway"
	"github.com/snsce/attendance/services/campus/handler"
	"github.com/snsce/attendance/services/campus/repository"
	"github.com/snsce/attendance/services/campus/usecase"
)

func main() {
	cfg := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to postgres", logger.Fields{"error": err.Error()})
	}
	defer pgClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", logger.Fields{"error": err.Error()})
	}
	defer redisClient.Close()

	// NSQ is optional; the service degrades to log-only events
	var producer *nsq.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsq.NewProducer(cfg.NSQ.ProducerAddress)
		if err != nil {
			logger.Warn("NSQ unavailable, domain events disabled", logger.Fields{
				"address": cfg.NSQ.ProducerAddress,
				"error":   err.Error(),
			})
		} else {
			defer producer.Stop()
		}
	}

	campusRepo := repository.NewCampusRepo(cfg, pgClient.GetDB(), redisClient)
	campusGW := gateway.NewCampusGW(cfg, producer)
	campusUC := usecase.NewCampusUC(cfg, campusRepo, campusGW)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)
	handler.NewHandler(campusUC).RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server", logger.Fields{"address": addr})
		if err := e.Start(addr); err != nil {
			logger.Info("server stopped", logger.Fields{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down cleanly", logger.Fields{"error": err.Error()})
	}
	logger.Info("server shut down")
}
