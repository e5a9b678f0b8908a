package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/zena-portal/zena-portal/internal/app"
	"github.com/zena-portal/zena-portal/internal/coverage"
	"github.com/zena-portal/zena-portal/internal/platform/db"
	"github.com/zena-portal/zena-portal/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	coverageRepo := coverage.NewRepository(pool)
	coverageService := coverage.NewService(coverageRepo, logger, cfg.SubmissionCutoffHour, nil)

	expireTask, err := jobs.NewExpireScanTask(time.Now())
	if err != nil {
		logger.Error("build expire scan task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskCoverageExpireScan, Handler: jobs.NewExpireScanHandler(coverageService, logger)},
		},
		Cron: []jobs.CronRegistration{
			// Sweep just after midnight so yesterday's undecided requests
			// expire before the morning review round.
			{Spec: "10 0 * * *", Task: expireTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
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
