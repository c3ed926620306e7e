package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/medfinder/medfinder-api/alerts"
	"github.com/medfinder/medfinder-api/auth"
	"github.com/medfinder/medfinder-api/config"
	"github.com/medfinder/medfinder-api/data"
	"github.com/medfinder/medfinder-api/extractor"
	"github.com/medfinder/medfinder-api/handlers"
	"github.com/medfinder/medfinder-api/logging"
	"github.com/medfinder/medfinder-api/pricing"
	"github.com/medfinder/medfinder-api/safety"
	"github.com/medfinder/medfinder-api/scheduler"
	"github.com/medfinder/medfinder-api/server"
	"github.com/medfinder/medfinder-api/validation"
)

func main() {
	// Load .env file if present; real deployments set variables directly
	if err := godotenv.Load(); err != nil {
		logging.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.Env)
	logging.Info("Starting MedFinder API", "env", cfg.Env, "log_level", cfg.LogLevel)

	store := data.NewDrugStore()
	logging.Info("Drug catalog loaded",
		"drugs", len(store.Drugs()),
		"pharmacies", len(store.Pharmacies()))

	safetyClient, err := safety.NewClient(
		cfg.OpenFDABaseURL,
		time.Duration(cfg.OpenFDATimeoutSecs)*time.Second,
		cfg.SafetyCacheSize,
	)
	if err != nil {
		logging.Error("Failed to create safety client", "error", err)
		os.Exit(1)
	}

	fieldExtractor := extractor.New(store)
	pricer := pricing.NewEngine(store)
	alertStore := alerts.NewStore()
	authenticator := auth.NewService()
	validator := validation.NewValidator()

	handler := handlers.NewHandler(
		store,
		fieldExtractor,
		pricer,
		safetyClient,
		alertStore,
		authenticator,
		validator,
		cfg.DefaultLocation,
	)

	jobs := scheduler.NewScheduler(store, pricer, alertStore, safetyClient, cfg.DefaultLocation, cfg.AlertIntervalMinutes)
	if err := jobs.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, handler)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logging.Error("Server error", "error", err)
	case sig := <-shutdown:
		logging.Info("Shutdown signal received", "signal", sig.String())
	}

	jobs.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
		os.Exit(1)
	}
}
