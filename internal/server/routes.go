package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/dailyverse"
	"github.com/taiwoajasa245/verse-of-the-day-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	h := dailyverse.NewHandler(s.service)
	r.Route("/verse-of-the-day/v1", func(r chi.Router) {
		r.Get("/today", h.GetTodayHandler)
		r.Post("/generate", h.GenerateHandler)
	})
	r.Get("/verse-of-the-day/v1", s.ServerIsWorking)

	// Serve the local image bucket; the disk object store's public URL space.
	fileServer := http.StripPrefix("/images/", http.FileServer(http.Dir(s.cfg.ImageBucket)))
	r.Get("/images/*", fileServer.ServeHTTP)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Verse of the Day api"
	response.JSON(w, http.StatusOK, resp)
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := s.db.Health()

	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		stats["redis"] = "down"
	} else {
		stats["redis"] = "up"
	}

	response.JSON(w, http.StatusOK, stats)
}
