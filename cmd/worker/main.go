package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/merhebia-finest/tilbud/internal/app"
	"github.com/merhebia-finest/tilbud/internal/observability"
	"github.com/merhebia-finest/tilbud/internal/offer"
	"github.com/merhebia-finest/tilbud/internal/offer/document"
	"github.com/merhebia-finest/tilbud/internal/platform/db"
	"github.com/merhebia-finest/tilbud/internal/settings"
	"github.com/merhebia-finest/tilbud/jobs"
	"github.com/merhebia-finest/tilbud/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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

	pdfClient := report.NewClient(cfg.GotenbergURL)
	if err := pdfClient.Ping(ctx); err != nil {
		logger.Warn("gotenberg ping", slog.Any("error", err))
	}
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

	settingsRepo := settings.NewRepository(pool)
	offerRepo := offer.NewRepository(pool)
	offerService := offer.NewService(logger, offerRepo, settingsRepo, renderer, artifacts, nil)

	metrics := observability.NewMetrics()
	pdfJob := offer.NewJob(offerService, metrics, logger)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeOfferPDF, Handler: pdfJob.Handle},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
