package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/dailyverse"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/database"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/image"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/secrets"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/storage"
	"github.com/taiwoajasa245/verse-of-the-day-api/pkg/config"
)

type Server struct {
	port    string
	db      database.Service
	redis   *redis.Client
	handler http.Handler
	cfg     *config.Config
	service *dailyverse.Service
	cancel  context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, rdb *redis.Client, cfg *config.Config) *Server {
	stats := db.Health()
	if stats["status"] != "up" {
		log.Fatal("Database connection failed")
	}
	log.Println("Database connection successful")

	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		log.Fatalf("Invalid app timezone %q: %v", cfg.AppTimezone, err)
	}

	store, err := storage.NewDiskStore(cfg.ImageBucket, cfg.ImageBaseURL)
	if err != nil {
		log.Fatalf("Image bucket unavailable: %v", err)
	}

	corpusRepo := dailyverse.NewCorpusRepo(db, cfg.CorpusTable)
	sampler := dailyverse.NewSampler(corpusRepo)
	cache := dailyverse.NewSelectionCache(rdb, cfg.DailyTable)
	pipeline := image.NewPipeline(secrets.NewEnvSource(cfg.SecretsDir), store, cfg.OpenAISecretName)
	service := dailyverse.NewService(sampler, cache, pipeline, cfg.TotalVerses, loc)

	s := &Server{
		port:    cfg.Port,
		db:      db,
		redis:   rdb,
		cfg:     cfg,
		service: service,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.service.StartScheduler(ctx)
	log.Println("Daily verse scheduler started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
