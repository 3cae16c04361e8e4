package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"advocate_site/internal/app"
	"advocate_site/internal/config"
	"advocate_site/internal/disclaimer"
	"advocate_site/internal/handlers"
	"advocate_site/internal/logging"
	"advocate_site/internal/middleware"
	"advocate_site/internal/tasks"
	"advocate_site/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, foundEnv, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("No .env file found, using system environment")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	site, err := app.LoadSite(cfg.ContentFile)
	if err != nil {
		return err
	}

	desk, err := app.NewDesk(cfg, site)
	if err != nil {
		return err
	}

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("Disclaimer store ready", zap.String("store", cfg.DisclaimerStore))

	ctrl := disclaimer.NewController(store, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	if app.TracksVisitors(cfg) {
		e.Use(middleware.Visitor(cfg.IsProduction()))
	}

	e.StaticFS("/static", echo.MustSubFS(web.Files, "static"))

	siteHandler := handlers.NewSiteHandler(site, desk, ctrl, logger)
	disclaimerHandler := handlers.NewDisclaimerHandler(ctrl, cfg.IsProduction())
	handlers.RegisterRoutes(e, siteHandler, disclaimerHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	// a memory store lives in this process, so it is pruned here instead of by the worker
	if cfg.DisclaimerStore == config.StoreMemory {
		registry := tasks.NewRegistry()
		tasks.DefineTasks(registry, store, cfg.DisclaimerRetention)
		g.Go(func() error {
			registry.Run(gctx, cfg.WorkerInterval, logger)
			return nil
		})
	}

	return g.Wait()
}
