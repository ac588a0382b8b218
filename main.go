package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodapp-api/auth"
	"foodapp-api/config"
	"foodapp-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	// Set Gin mode
	switch {
	case cfg.Environment.GinMode != "":
		gin.SetMode(cfg.Environment.GinMode)
	case cfg.IsDevelopment():
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB(cfg.DB, cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.Info("Database connected and migrated", "driver", cfg.DB.Driver)

	if cfg.SeedOnStart {
		if err := config.Seed(db); err != nil {
			return err
		}
		logger.Info("Seed data ensured")
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	router, err := routes.NewRouter(db, tokens, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Address(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", "address", srv.Addr, "environment", cfg.Environment.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigChan:
		logger.Info("Signal received, starting graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
	return nil
}
