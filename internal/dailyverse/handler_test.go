package dailyverse

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func todaysSelection() *DailySelection {
	return &DailySelection{
		Date:           "2026-08-29",
		VerseID:        "JHN.3.16",
		Book:           "John",
		Chapter:        3,
		Verse:          16,
		Text:           "For God so loved the world...",
		CanonicalIndex: 26137,
		ImageURL:       "https://img.example.com/John_3_16_2026-08-29.png",
	}
}

func TestGetTodayHandler_NotYetGenerated(t *testing.T) {
	svc := newTestService(corpusOfSize(1), newFakeCache(), &fakeImages{}, 1)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/verse-of-the-day/v1/today", nil)
	h.GetTodayHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Verse not generated yet for today"}`, strings.TrimSpace(w.Body.String()))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetTodayHandler_Success(t *testing.T) {
	cache := newFakeCache()
	cache.items["2026-08-29"] = todaysSelection()

	svc := newTestService(corpusOfSize(1), cache, &fakeImages{}, 1)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/verse-of-the-day/v1/today", nil)
	h.GetTodayHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "2026-08-29", body["date"])
	assert.Equal(t, "John", body["book"])
	assert.Equal(t, float64(3), body["chapter"])
	assert.Equal(t, float64(16), body["verse"])
	assert.Equal(t, "For God so loved the world...", body["text"])
	assert.Equal(t, "https://img.example.com/John_3_16_2026-08-29.png", body["image_url"])

	// Internal fields stay out of the public projection.
	assert.NotContains(t, body, "verse_id")
	assert.NotContains(t, body, "canonical_index")
}

func TestGetTodayHandler_StoreFailure(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = assert.AnError

	svc := newTestService(corpusOfSize(1), cache, &fakeImages{}, 1)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/verse-of-the-day/v1/today", nil)
	h.GetTodayHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Internal server error"}`, strings.TrimSpace(w.Body.String()))
}

func TestGenerateHandler_ReturnsFullSelection(t *testing.T) {
	corpus := corpusOfSize(5)
	cache := newFakeCache()
	svc := newTestService(corpus, cache, &fakeImages{url: "https://img.example.com/x.png"}, 5)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/verse-of-the-day/v1/generate", nil)
	h.GenerateHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-08-29", body["date"])
	assert.Contains(t, body, "verse_id")
	assert.Contains(t, body, "canonical_index")
	assert.Equal(t, "https://img.example.com/x.png", body["image_url"])
}

func TestGenerateHandler_SamplerFailure(t *testing.T) {
	corpus := &fakeCorpus{verses: map[int]*VerseRecord{}}
	svc := newTestService(corpus, newFakeCache(), &fakeImages{}, 10)
	h := NewHandler(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/verse-of-the-day/v1/generate", nil)
	h.GenerateHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Failed to generate verse of the day"}`, strings.TrimSpace(w.Body.String()))
}
