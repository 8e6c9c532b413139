package dailyverse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Sampler draws a uniformly random canonical index and resolves it against
// the corpus. A miss means the corpus and TOTAL_VERSES have drifted apart,
// which is fatal for the invocation rather than something to retry.
type Sampler struct {
	repo CorpusRepo
	intN func(n int) int
}

func NewSampler(repo CorpusRepo) *Sampler {
	return &Sampler{repo: repo, intN: rand.IntN}
}

// RandomVerse picks one verse uniformly from [1, total].
func (s *Sampler) RandomVerse(ctx context.Context, total int) (*VerseRecord, error) {
	idx := s.intN(total) + 1

	verse, err := s.repo.GetByCanonicalIndex(ctx, idx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("no verse found for canonical_index=%d: %w", idx, err)
		}
		return nil, err
	}

	slog.Info("selected verse",
		"verse_id", verse.VerseID,
		"book", verse.Book,
		"chapter", verse.Chapter,
		"verse", verse.Verse,
		"canonical_index", verse.CanonicalIndex,
	)
	return verse, nil
}
