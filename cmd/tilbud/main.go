package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/merhebia-finest/tilbud/internal/app"
	"github.com/merhebia-finest/tilbud/internal/auth"
	"github.com/merhebia-finest/tilbud/internal/catalog/optionpackages"
	"github.com/merhebia-finest/tilbud/internal/catalog/packages"
	"github.com/merhebia-finest/tilbud/internal/catalog/vehicles"
	"github.com/merhebia-finest/tilbud/internal/observability"
	"github.com/merhebia-finest/tilbud/internal/offer"
	"github.com/merhebia-finest/tilbud/internal/offer/document"
	"github.com/merhebia-finest/tilbud/internal/platform/cache"
	"github.com/merhebia-finest/tilbud/internal/platform/db"
	"github.com/merhebia-finest/tilbud/internal/settings"
	"github.com/merhebia-finest/tilbud/internal/users"
	"github.com/merhebia-finest/tilbud/jobs"
	"github.com/merhebia-finest/tilbud/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionStore := auth.NewStore(redisClient, cfg.SessionTTL)
	authMiddleware := auth.Middleware{Store: sessionStore, Logger: logger}

	usersRepo := users.NewRepository(pool)
	usersService := users.NewService(usersRepo)
	usersHandler := users.NewHandler(logger, usersService)

	authService := auth.NewService(usersRepo, sessionStore)
	authHandler := auth.NewHandler(logger, authService)

	vehiclesHandler := vehicles.NewHandler(logger, vehicles.NewService(vehicles.NewRepository(pool)))
	packagesHandler := packages.NewHandler(logger, packages.NewService(packages.NewRepository(pool)))
	optionPackagesHandler := optionpackages.NewHandler(logger, optionpackages.NewService(optionpackages.NewRepository(pool)))

	settingsRepo := settings.NewRepository(pool)
	settingsHandler := settings.NewHandler(logger, settingsRepo)

	pdfClient := report.NewClient(cfg.GotenbergURL)
	renderer, err := document.NewRenderer(pdfClient)
	if err != nil {
		logger.Error("init pdf renderer", slog.Any("error", err))
		os.Exit(1)
	}
	artifacts, err := offer.NewArtifactStore(cfg.PDFDir)
	if err != nil {
		logger.Error("init artifact store", slog.Any("error", err))
		os.Exit(1)
	}

	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
	queueClient, err := jobs.NewClient(redisOpts)
	if err != nil {
		logger.Error("init queue client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := queueClient.Close(); err != nil {
			logger.Warn("queue client close", slog.Any("error", err))
		}
	}()

	offerRepo := offer.NewRepository(pool)
	offerService := offer.NewService(logger, offerRepo, settingsRepo, renderer, artifacts, queueClient)
	offerHandler := offer.NewHandler(logger, offerService)

	inspector := asynq.NewInspector(redisOpts)
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)
	reportHandler := report.NewHandler(pdfClient, logger)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:                logger,
		Config:                cfg,
		AuthMiddleware:        authMiddleware,
		AuthHandler:           authHandler,
		UsersHandler:          usersHandler,
		VehiclesHandler:       vehiclesHandler,
		PackagesHandler:       packagesHandler,
		OptionPackagesHandler: optionPackagesHandler,
		SettingsHandler:       settingsHandler,
		OfferHandler:          offerHandler,
		ReportHandler:         reportHandler,
		JobHandler:            jobHandler,
		Metrics:               metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}
