// Package image acquires a devotional illustration for a verse: AI
// generation first, a deterministic stock-photo fallback when anything in
// the primary path fails.
package image

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3/option"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/dailyverse"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/secrets"
	"github.com/taiwoajasa245/verse-of-the-day-api/internal/storage"
)

const promptStyle = "Create a beautiful Catholic devotional illustration inspired by this Bible verse. " +
	"Style: gentle, reverent, warm light, suitable for a daily prayer app wallpaper. " +
	"No text in the image itself."

type Pipeline struct {
	secrets    secrets.Source
	store      storage.ObjectStore
	secretName string

	newGenerator func(apiKey string) Generator
	now          func() time.Time
}

func NewPipeline(src secrets.Source, store storage.ObjectStore, secretName string) *Pipeline {
	return &Pipeline{
		secrets:    src,
		store:      store,
		secretName: secretName,
		newGenerator: func(apiKey string) Generator {
			return NewOpenAIGenerator(apiKey)
		},
		now: time.Now,
	}
}

// NewPipelineWithOptions is NewPipeline with extra OpenAI request options,
// used to point the client at a test server.
func NewPipelineWithOptions(src secrets.Source, store storage.ObjectStore, secretName string, extra ...option.RequestOption) *Pipeline {
	p := NewPipeline(src, store, secretName)
	p.newGenerator = func(apiKey string) Generator {
		return NewOpenAIGenerator(apiKey, extra...)
	}
	return p
}

// AcquireImage returns an illustration URL for the verse. The whole primary
// path is one failure domain: any error is logged and resolved by the
// fallback URL, so callers always get something usable.
func (p *Pipeline) AcquireImage(ctx context.Context, verse *dailyverse.VerseRecord) string {
	url, err := p.generateAndUpload(ctx, verse)
	if err != nil {
		slog.Error("AI image generation failed, using fallback image",
			"error", err, "verse_id", verse.VerseID)
		return FallbackURL(verse)
	}
	return url
}

func (p *Pipeline) generateAndUpload(ctx context.Context, verse *dailyverse.VerseRecord) (string, error) {
	apiKey, err := p.secrets.Get(ctx, p.secretName)
	if err != nil {
		return "", fmt.Errorf("loading OpenAI API key: %w", err)
	}

	png, err := p.newGenerator(apiKey).Generate(ctx, buildPrompt(verse))
	if err != nil {
		return "", err
	}

	key := objectKey(verse, p.now().Format("2006-01-02"))
	slog.Info("uploading AI-generated image", "key", key)

	url, err := p.store.Put(ctx, key, "image/png", png)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	return url, nil
}

func buildPrompt(verse *dailyverse.VerseRecord) string {
	return fmt.Sprintf("%s\n\nVerse: %s %d:%d\nText: %s",
		promptStyle, verse.Book, verse.Chapter, verse.Verse, verse.Text)
}

func objectKey(verse *dailyverse.VerseRecord, date string) string {
	book := strings.ReplaceAll(verse.Book, " ", "_")
	return fmt.Sprintf("%s_%d_%d_%s.png", book, verse.Chapter, verse.Verse, date)
}
