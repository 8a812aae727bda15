/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the vacation tracker server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (defaults < YAML file < environment)
  2. Build the logger
  3. Open the storage backend (Postgres, durable files, or memory)
  4. Create API handler with dependencies
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -config  Path to the YAML config file (default: ferias.yaml;
           missing file falls back to defaults + environment)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the storage backend
  4. Exit

EXAMPLES:
  # Run against Postgres
  DATABASE_URL=postgres://... ./server

  # Run with durable JSON files
  FERIAS_DATA_DIR=./data ./server

  # Run fully in memory
  ./server

SEE ALSO:
  - config/config.go: Configuration layering
  - api/server.go: Router configuration
  - store/store.go: Backend selection
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unchain0/sistema-ferias/api"
	"github.com/unchain0/sistema-ferias/auth"
	"github.com/unchain0/sistema-ferias/config"
	"github.com/unchain0/sistema-ferias/logger"
	"github.com/unchain0/sistema-ferias/store"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	handler := api.NewHandler(st, auth.NewService(st), tokens, cfg.Demo, log)
	router := api.NewRouter(handler, cfg.Server.CORSOrigin)

	scheduler := api.NewDemoRefreshScheduler(handler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Error("server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
