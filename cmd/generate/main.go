// One-shot generator invocation for external schedulers (cron, systemd
// timers). Prints the selection JSON on success; exits non-zero on a fatal
// error.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/dailyverse"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/database"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/image"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/secrets"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/storage"
	"github.com/taiwoajasa245/verse-of-the-day-api/pkg/config"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	db := database.New(cfg)
	defer db.Close()

	rdb, err := database.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to redis: %v", err)
	}
	defer rdb.Close()

	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		log.Fatalf("invalid app timezone %q: %v", cfg.AppTimezone, err)
	}

	store, err := storage.NewDiskStore(cfg.ImageBucket, cfg.ImageBaseURL)
	if err != nil {
		log.Fatalf("image bucket unavailable: %v", err)
	}

	corpusRepo := dailyverse.NewCorpusRepo(db, cfg.CorpusTable)
	sampler := dailyverse.NewSampler(corpusRepo)
	cache := dailyverse.NewSelectionCache(rdb, cfg.DailyTable)
	pipeline := image.NewPipeline(secrets.NewEnvSource(cfg.SecretsDir), store, cfg.OpenAISecretName)
	service := dailyverse.NewService(sampler, cache, pipeline, cfg.TotalVerses, loc)

	sel, err := service.Generate(ctx)
	if err != nil {
		log.Fatalf("error generating verse of the day: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(sel); err != nil {
		log.Fatalf("error encoding selection: %v", err)
	}
}
