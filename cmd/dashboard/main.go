package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lorrc/usage-dashboard/internal/adapters/primary/cli"
	"github.com/lorrc/usage-dashboard/internal/adapters/secondary/dashboardapi"
	"github.com/lorrc/usage-dashboard/internal/config"
	"github.com/lorrc/usage-dashboard/internal/core/services"
	"github.com/lorrc/usage-dashboard/internal/core/timerange"
	"github.com/lorrc/usage-dashboard/internal/infrastructure/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	// 2. Initialize Structured Logger (stderr, stdout carries the report)
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stderr,
		AddSource:   cfg.Logging.AddSource,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
	})
	logger.Debug("configuration loaded", "config", cfg.String(), "version", cfg.App.Version)

	// 3. Parse Arguments
	opts, err := cli.ParseArgs(os.Args[1:], cfg.Dashboard.DefaultCategories, os.Stderr)
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return 2
	}

	// 4. Dependency Injection
	var clock timerange.Clock = timerange.NewSystemClock()
	if !cfg.Clock.UseLocalOffset {
		clock = timerange.NewSystemClockWithOffset(cfg.Clock.UTCOffset)
	}

	client, err := dashboardapi.NewClient(dashboardapi.Config{
		BaseURL:           cfg.Dashboard.BaseURL,
		APIPrefix:         cfg.Dashboard.APIPrefix,
		Timeout:           cfg.Dashboard.Timeout,
		RequestsPerSecond: cfg.Dashboard.RequestsPerSecond,
		BurstSize:         cfg.Dashboard.BurstSize,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("failed to create dashboard client", "error", err)
		return 1
	}

	dashboardService := services.NewDashboardService(client, clock)
	runner := cli.NewRunner(dashboardService, clock, os.Stdout, logger)

	// 5. Run until done or interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx, opts); err != nil {
		logger.Error("dashboard query failed", "error", err, "range", opts.Range.String(), "report", string(opts.Report))
		return 1
	}
	return 0
}
