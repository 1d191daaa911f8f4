package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sellerpulse/sellerpulse/internal/core/config"
	"github.com/sellerpulse/sellerpulse/internal/dashboard"
	"github.com/sellerpulse/sellerpulse/internal/dataset"
	"github.com/sellerpulse/sellerpulse/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	// 2. Load Catalog and Generate Dataset
	catalog, err := dataset.LoadCatalog(cfg.Dataset.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	orders, err := dataset.Generate(catalog, dataset.GeneratorOptions{
		Records:  cfg.Dataset.Records,
		SpanDays: cfg.Dataset.SpanDays,
		Seed:     cfg.Dataset.Seed,
	})
	if err != nil {
		slog.Error("Failed to generate dataset", "error", err)
		os.Exit(1)
	}

	store, err := dataset.NewStore(orders)
	if err != nil {
		slog.Error("Failed to build dataset store", "error", err)
		os.Exit(1)
	}

	min, max := store.Bounds()
	slog.Info("Dataset ready",
		"records", store.Count(),
		"categories", len(store.Categories()),
		"marketplaces", len(store.Marketplaces()),
		"data_from", min,
		"data_through", max,
	)

	// 3. Initialize Dashboard (query API)
	dashboardSvc := dashboard.NewService(store, cfg.Dashboard.RecentOrders, cfg.Dashboard.ExportRecentOrders)

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode)
	dashboardSvc.RegisterRoutes(srv.Engine)

	// 5. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
