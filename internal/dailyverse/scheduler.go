package dailyverse

import (
	"context"
	"log/slog"
	"time"

	"github.com/taiwoajasa245/verse-of-the-day-api/pkg/config"
)

// StartScheduler runs the generator on a schedule.
// - In dev: checks every 10 minutes.
// - In prod: checks hourly.
// Generate is idempotent per date, so frequent checks just cover restarts
// and the midnight rollover; only the first check of a date does real work.
func (s *Service) StartScheduler(ctx context.Context) {
	tickerDuration := 10 * time.Minute

	if config.GetAppEnv() == "production" {
		tickerDuration = time.Hour
	}

	ticker := time.NewTicker(tickerDuration)
	defer ticker.Stop()

	slog.Info("daily verse scheduler started", "interval", tickerDuration.String())

	s.runGeneration(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped gracefully")
			return
		case <-ticker.C:
			s.runGeneration(ctx)
		}
	}
}

func (s *Service) runGeneration(ctx context.Context) {
	if _, err := s.Generate(ctx); err != nil {
		slog.Error("daily verse generation failed", "error", err)
	}
}
