package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/catan-builder/cliparse"
	"github.com/danielhkuo/catan-builder/db"
	"github.com/danielhkuo/catan-builder/healthcheck"
	"github.com/danielhkuo/catan-builder/logging"
	"github.com/danielhkuo/catan-builder/middleware"
	"github.com/danielhkuo/catan-builder/persist"
	"github.com/danielhkuo/catan-builder/router"
	"github.com/danielhkuo/catan-builder/store"
)

func main() {
	var err error

	// A .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		slog.Error("Error configuring logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	// Probe mode for container health checks
	if cfg.HealthCheck {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		status := healthcheck.NewClient(cfg.HealthURL).Status(ctx)
		cancel()
		slog.Info("health check", "url", cfg.HealthURL, "status", status)
		if status != "ok" {
			os.Exit(1)
		}
		return
	}

	// Open database and create schema
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Restore the saved board
	repo := persist.NewRepository(db.NewKV(dbConn), cfg.BoardKey)
	boardStore := store.New(context.Background(), repo)
	slog.Info("Board loaded", "key", cfg.BoardKey, "assigned", boardStore.CurrentState().Assigned())

	// Create router
	mux := router.NewRouter(boardStore)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux, cfg.FrontendOrigin),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight saves finish
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "origin", cfg.FrontendOrigin)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
