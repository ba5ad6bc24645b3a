// Package main is the entry point for the investor risk-profiling service.
// It serves the risk questionnaire, converts completed answer sets into
// deterministic risk classifications with recommended asset allocations,
// and stores the resulting profiles for downstream consumers.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/clearpath-invest/profiler/internal/config"
	"github.com/clearpath-invest/profiler/internal/database"
	"github.com/clearpath-invest/profiler/internal/modules/allocation"
	"github.com/clearpath-invest/profiler/internal/modules/profile"
	"github.com/clearpath-invest/profiler/internal/modules/questionnaire"
	"github.com/clearpath-invest/profiler/internal/scheduler"
	"github.com/clearpath-invest/profiler/internal/server"
	"github.com/clearpath-invest/profiler/pkg/logger"
)

// main orchestrates the startup sequence:
//  1. Load configuration from environment variables
//  2. Initialize structured logging
//  3. Validate the question catalog and allocation table (fatal on defect)
//  4. Open and migrate the profiles database
//  5. Wire repositories and HTTP server
//  6. Start the maintenance scheduler
//  7. Wait for shutdown signal and shut down gracefully
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails so the error is still logged
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("catalog_version", questionnaire.Version).Msg("Starting risk profiler")

	// Catalog and allocation table defects are deployment configuration
	// errors: refuse to start rather than fail per-request.
	catalog := questionnaire.Default()
	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Question catalog is invalid")
	}
	if err := allocation.ValidateTable(); err != nil {
		log.Fatal().Err(err).Msg("Allocation table is invalid")
	}

	profilesDB, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "profiles.db"),
		Name: "profiles",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open profiles database")
	}
	defer profilesDB.Close()

	if err := profilesDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate profiles database")
	}
	log.Info().Str("path", profilesDB.Path()).Msg("Profiles database ready")

	profileRepo := profile.NewRepository(profilesDB.Conn(), log)

	// Nightly WAL checkpoint and integrity check
	sched := scheduler.New(log)
	if err := sched.AddJob("0 3 * * *", scheduler.NewDBMaintenanceJob(profilesDB, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register maintenance job")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:         log,
		ProfilesDB:  profilesDB,
		Config:      cfg,
		Catalog:     catalog,
		ProfileRepo: profileRepo,
	})

	// Start server in a goroutine so we can wait for shutdown signals
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Risk profiler stopped")
}
