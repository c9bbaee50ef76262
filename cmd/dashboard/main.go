package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/gymkit/dashboard/internal/api/http"
	"github.com/gymkit/dashboard/internal/api/http/handlers"
	"github.com/gymkit/dashboard/internal/app"
	"github.com/gymkit/dashboard/internal/config"
	"github.com/gymkit/dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core := app.New(cfg, logger)
	defer core.Close()

	if _, ok := core.Start(ctx); ok {
		logger.Info("resumed persisted session")
	}

	fiberApp := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(fiberApp, logger)
	httptransport.RegisterRoutes(fiberApp, httptransport.RouteConfig{
		App:      core,
		Health:   handlers.NewHealthHandler(),
		Session:  handlers.NewSessionHandler(core),
		Pages:    handlers.NewPagesHandler(core),
		Members:  handlers.NewMembersHandler(core),
		Trainers: handlers.NewTrainersHandler(core),
	})

	go func() {
		if err := fiberApp.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = fiberApp.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
