package dailyverse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/database"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrNotYetGenerated = errors.New("verse not generated yet for today")
)

type CorpusRepo interface {
	GetByCanonicalIndex(ctx context.Context, index int) (*VerseRecord, error)
}

type repository struct {
	db    *sql.DB
	table string
}

// NewCorpusRepo reads verses from the corpus table. The table name comes
// from configuration and is interpolated into the query, so it must be
// operator-supplied, never user input.
func NewCorpusRepo(dbService database.Service, table string) CorpusRepo {
	return &repository{db: dbService.DB(), table: table}
}

func (r *repository) GetByCanonicalIndex(ctx context.Context, index int) (*VerseRecord, error) {
	query := fmt.Sprintf(`
		SELECT verse_id, book, chapter, verse, text, canonical_index
		FROM %s
		WHERE canonical_index = $1
		LIMIT 1
	`, r.table)

	var v VerseRecord
	err := r.db.QueryRowContext(ctx, query, index).Scan(
		&v.VerseID,
		&v.Book,
		&v.Chapter,
		&v.Verse,
		&v.Text,
		&v.CanonicalIndex,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying corpus by canonical_index: %w", err)
	}
	return &v, nil
}
