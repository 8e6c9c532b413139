package dailyverse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ImageAcquirer produces an illustration URL for a verse. It is total: any
// failure inside it resolves to a fallback URL, never an error.
type ImageAcquirer interface {
	AcquireImage(ctx context.Context, verse *VerseRecord) string
}

type Service struct {
	sampler     *Sampler
	cache       SelectionCache
	images      ImageAcquirer
	totalVerses int
	loc         *time.Location
	now         func() time.Time
}

func NewService(sampler *Sampler, cache SelectionCache, images ImageAcquirer, totalVerses int, loc *time.Location) *Service {
	return &Service{
		sampler:     sampler,
		cache:       cache,
		images:      images,
		totalVerses: totalVerses,
		loc:         loc,
		now:         time.Now,
	}
}

// Today resolves the current calendar date in the configured app timezone.
// The generator and reader must agree on this or the reader 404s around
// midnight.
func (s *Service) Today() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

// Generate runs the daily selection workflow: return the existing selection
// for today if one exists, otherwise sample a verse, acquire an image, and
// store the result. Single pass, no retries.
func (s *Service) Generate(ctx context.Context) (*DailySelection, error) {
	date := s.Today()
	slog.Info("generating verse of the day", "date", date, "timezone", s.loc.String())

	existing, err := s.cache.Get(ctx, date)
	if err == nil {
		slog.Info("verse for today already exists, returning existing selection", "date", date)
		return existing, nil
	}
	if !errors.Is(err, ErrNotYetGenerated) {
		return nil, fmt.Errorf("checking existing selection: %w", err)
	}

	verse, err := s.sampler.RandomVerse(ctx, s.totalVerses)
	if err != nil {
		return nil, err
	}

	imageURL := s.images.AcquireImage(ctx, verse)

	sel := &DailySelection{
		Date:           date,
		VerseID:        verse.VerseID,
		Book:           verse.Book,
		Chapter:        verse.Chapter,
		Verse:          verse.Verse,
		Text:           verse.Text,
		CanonicalIndex: verse.CanonicalIndex,
		ImageURL:       imageURL,
	}

	if err := s.cache.Put(ctx, date, sel); err != nil {
		return nil, err
	}

	slog.Info("stored verse of the day", "date", date, "verse_id", sel.VerseID)
	return sel, nil
}

// TodaysSelection is the reader workflow: a pure lookup with the public
// field projection. Absence is a normal outcome, reported as
// ErrNotYetGenerated.
func (s *Service) TodaysSelection(ctx context.Context) (*DailySelectionResponse, error) {
	sel, err := s.cache.Get(ctx, s.Today())
	if err != nil {
		return nil, err
	}
	return sel.response(), nil
}
