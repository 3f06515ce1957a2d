package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eddiereese03-a11y/foodapp/internal/config"
	"github.com/eddiereese03-a11y/foodapp/internal/logger"
	"github.com/eddiereese03-a11y/foodapp/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	srv, err := server.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to create server", zap.Error(err))
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zapLogger.Info("received signal", zap.String("signal", sig.String()))
	}

	zapLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown error", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
