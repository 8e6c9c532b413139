package image

import (
	"strings"

	"github.com/taiwoajasa245/verse-of-the-day-api/internal/dailyverse"
)

// Keyword tables checked in order; the first matching theme wins. Matching
// is substring-based, so "loved" and "beloved" both land on "love".
var fallbackThemes = []struct {
	theme    string
	keywords []string
}{
	{"love", []string{"love", "charity", "merciful", "kindness"}},
	{"armor of god", []string{"fear", "enemy", "battle", "war", "fight"}},
	{"peace", []string{"peace", "rest", "quiet", "still"}},
	{"light", []string{"light", "lamp", "sun", "shine", "glory"}},
	{"night", []string{"night", "darkness", "shadow"}},
}

func classifyTheme(verse *dailyverse.VerseRecord) string {
	text := strings.ToLower(verse.Text)

	for _, t := range fallbackThemes {
		for _, kw := range t.keywords {
			if strings.Contains(text, kw) {
				return t.theme
			}
		}
	}

	switch strings.ToLower(verse.Book) {
	case "psalms", "psalm":
		return "mountains sunrise"
	}
	return "bible cross"
}

// FallbackURL builds a themed stock-photo query for the verse. Pure: it
// always produces a URL without any network call.
func FallbackURL(verse *dailyverse.VerseRecord) string {
	theme := strings.ReplaceAll(classifyTheme(verse), " ", "+")
	return "https://source.unsplash.com/featured/?" + theme
}
