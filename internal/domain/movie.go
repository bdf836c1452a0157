package domain

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a canonical catalog record.
//
// ID and Alias are assigned at insertion time and are immutable afterwards.
// Alias is the short human-stable key used in public URLs; it survives title
// edits so that shared links keep working.
type Movie struct {
	ID            uuid.UUID      `json:"id"`
	Alias         string         `json:"alias"`
	Title         string         `json:"title"`
	Year          *int           `json:"year,omitempty"`
	Director      string         `json:"director"`
	OriginalTitle string         `json:"original_title"`
	Plot          string         `json:"plot"`
	Notes         string         `json:"notes"`
	Genres        []string       `json:"genres"`
	Links         []DownloadLink `json:"links"`
	RatingSum     int64          `json:"rating_sum"`
	RatingCount   int64          `json:"rating_count"`
	CreatedAt     time.Time      `json:"created_at"`
}

// DownloadLink is a labeled streaming/download source attached to a movie.
// Order is meaningful and preserved as submitted.
type DownloadLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// AverageRating returns the aggregate rating, or 0 if nobody voted yet.
func (m *Movie) AverageRating() float64 {
	if m.RatingCount == 0 {
		return 0
	}
	return float64(m.RatingSum) / float64(m.RatingCount)
}

// MovieDraft is the proposed data of a change: a sparse set of movie fields.
// A nil field means "untouched" — for updates the Applier overwrites only the
// fields that are present, so a client that edited a single field submits a
// single field. For creates, nil fields fall back to empty values; Title is
// the only required field.
type MovieDraft struct {
	Title         *string        `json:"title,omitempty"`
	Year          *int           `json:"year,omitempty"`
	Director      *string        `json:"director,omitempty"`
	OriginalTitle *string        `json:"original_title,omitempty"`
	Plot          *string        `json:"plot,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	Genres        []string       `json:"genres,omitempty"`
	Links         []DownloadLink `json:"links,omitempty"`
}

// IsEmpty reports whether the draft touches no field at all.
func (d *MovieDraft) IsEmpty() bool {
	return d.Title == nil && d.Year == nil && d.Director == nil &&
		d.OriginalTitle == nil && d.Plot == nil && d.Notes == nil &&
		d.Genres == nil && d.Links == nil
}

// DraftFromMovie captures the full state of a movie as a draft.
// Used to freeze delete summaries and to seed edit forms.
func DraftFromMovie(m *Movie) *MovieDraft {
	title := m.Title
	director := m.Director
	original := m.OriginalTitle
	plot := m.Plot
	notes := m.Notes

	d := &MovieDraft{
		Title:         &title,
		Director:      &director,
		OriginalTitle: &original,
		Plot:          &plot,
		Notes:         &notes,
		Genres:        append([]string(nil), m.Genres...),
		Links:         append([]DownloadLink(nil), m.Links...),
	}
	if m.Year != nil {
		year := *m.Year
		d.Year = &year
	}
	return d
}

// DeleteSummary returns the minimal descriptive subset shown in the review
// queue for delete proposals: title, year and director only.
func DeleteSummary(m *Movie) *MovieDraft {
	title := m.Title
	director := m.Director

	d := &MovieDraft{
		Title:    &title,
		Director: &director,
	}
	if m.Year != nil {
		year := *m.Year
		d.Year = &year
	}
	return d
}
