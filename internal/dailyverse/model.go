package dailyverse

// VerseRecord is a single row of the bible corpus. The corpus is seeded
// offline and never written by this service.
type VerseRecord struct {
	VerseID        string `json:"verse_id"`
	Book           string `json:"book"`
	Chapter        int    `json:"chapter"`
	Verse          int    `json:"verse"`
	Text           string `json:"text"`
	CanonicalIndex int    `json:"canonical_index"`
}

// DailySelection is the verse chosen for a calendar date plus its
// illustration URL. Written once per date, then treated as immutable.
type DailySelection struct {
	Date           string `json:"date"`
	VerseID        string `json:"verse_id"`
	Book           string `json:"book"`
	Chapter        int    `json:"chapter"`
	Verse          int    `json:"verse"`
	Text           string `json:"text"`
	CanonicalIndex int    `json:"canonical_index"`
	ImageURL       string `json:"image_url"`
}

// DailySelectionResponse is the public projection served by the reader
// endpoint. Internal bookkeeping fields (verse_id, canonical_index) stay out.
type DailySelectionResponse struct {
	Date     string `json:"date"`
	Book     string `json:"book"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

func (s *DailySelection) response() *DailySelectionResponse {
	return &DailySelectionResponse{
		Date:     s.Date,
		Book:     s.Book,
		Chapter:  s.Chapter,
		Verse:    s.Verse,
		Text:     s.Text,
		ImageURL: s.ImageURL,
	}
}
