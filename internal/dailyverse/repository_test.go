package dailyverse

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/database"
)

func TestCorpusRepo_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("bible"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(pgContainer)
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `
		CREATE TABLE verses (
			verse_id        TEXT PRIMARY KEY,
			book            TEXT NOT NULL,
			chapter         INT  NOT NULL,
			verse           INT  NOT NULL,
			text            TEXT NOT NULL,
			canonical_index INT  NOT NULL UNIQUE
		)
	`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
		INSERT INTO verses (verse_id, book, chapter, verse, text, canonical_index) VALUES
		('GEN.1.1', 'Genesis', 1, 1, 'In the beginning God created the heaven and the earth.', 1),
		('JHN.3.16', 'John', 3, 16, 'For God so loved the world...', 2),
		('PSA.23.1', 'Psalms', 23, 1, 'The Lord is my shepherd; I shall not want.', 3)
	`)
	require.NoError(t, err)

	repo := NewCorpusRepo(database.NewWithDB(db), "verses")

	t.Run("hit", func(t *testing.T) {
		v, err := repo.GetByCanonicalIndex(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "JHN.3.16", v.VerseID)
		assert.Equal(t, "John", v.Book)
		assert.Equal(t, 3, v.Chapter)
		assert.Equal(t, 16, v.Verse)
		assert.Equal(t, 2, v.CanonicalIndex)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.GetByCanonicalIndex(ctx, 99)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("sampler over live corpus", func(t *testing.T) {
		sampler := NewSampler(repo)
		for i := 0; i < 20; i++ {
			v, err := sampler.RandomVerse(ctx, 3)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v.CanonicalIndex, 1)
			assert.LessOrEqual(t, v.CanonicalIndex, 3)
		}
	})
}
