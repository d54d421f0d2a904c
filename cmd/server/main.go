package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"pr-dashboard/internal/bootstrap"
	"pr-dashboard/internal/infrastructure/config"
	httpserver "pr-dashboard/internal/infrastructure/http"
	"pr-dashboard/internal/infrastructure/logger"
	"syscall"
	"time"
)

func main() {
	cfg := config.MustLoad()

	ctx := context.Background()
	log := logger.New(cfg.Env)

	app, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to build application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := httpserver.NewServer(cfg.Addr(), cfg.HTTPServer.RequestTimeout, log, app.Dashboard, app.Report)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)

	go func() {
		if err := server.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	select {
	case <-quit:
	case <-done:
		os.Exit(1)
	}
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
}
