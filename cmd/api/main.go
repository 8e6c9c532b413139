package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/database"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/server"
	"github.com/taiwoajasa245/verse-of-the-day-api/pkg/config"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := database.New(cfg)
	defer db.Close()

	rdb, err := database.NewRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to redis: %v", err)
	}
	defer rdb.Close()

	srv := server.NewServer(db, rdb, cfg)
	srv.StartBackgroundJobs()

	httpServer := srv.HTTPServer()

	go func() {
		slog.Info("server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	srv.StopBackgroundJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
}
