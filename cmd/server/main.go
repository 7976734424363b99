package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flight-recovery-service/internal/infrastructure/bootstrap"
	"flight-recovery-service/internal/infrastructure/config"
	"flight-recovery-service/internal/infrastructure/router"
	"flight-recovery-service/internal/interface/handler"
	"flight-recovery-service/internal/usecase"
	"flight-recovery-service/pkg/logger"
	"flight-recovery-service/pkg/metrics"
	"flight-recovery-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Flight Recovery Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sources, err := bootstrap.OpenSources(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open data sources", "error", err)
	}

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	matcher := utils.NewProfileMatcher(log)
	coordinator := usecase.NewRecoveryCoordinator(
		sources.Disruptions,
		sources.Profiles,
		sources.Inventory,
		matcher,
		utils.NewFlightExtractor(log),
		utils.NewSeatExtractor(log),
		m,
		log,
	)
	profileService := usecase.NewProfileService(sources.Profiles, matcher, log)

	h := handler.NewRecoveryHandler(coordinator, profileService, log)
	r := router.SetupRouter(h, promhttp.Handler(), log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := sources.Close(shutdownCtx); err != nil {
		log.Error("Data source close error", "error", err)
	}

	log.Info("Flight Recovery Service stopped")
}
