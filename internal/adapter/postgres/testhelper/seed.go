package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// SeedMovie inserts a movie with sensible defaults and returns it.
// Fields already set on the passed movie are kept.
func SeedMovie(t *testing.T, pool *pgxpool.Pool, m domain.Movie) domain.Movie {
	t.Helper()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Alias == "" {
		m.Alias = "m-" + m.ID.String()[:8]
	}
	if m.Title == "" {
		m.Title = "Seed Movie"
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}
	if m.Links == nil {
		m.Links = []domain.DownloadLink{}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	linksJSON, err := json.Marshal(m.Links)
	if err != nil {
		t.Fatalf("testhelper: marshal links: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO movies (id, alias, title, year, director, original_title, plot, notes,
		                     genres, links, rating_sum, rating_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ID, m.Alias, m.Title, m.Year, m.Director, m.OriginalTitle, m.Plot, m.Notes,
		m.Genres, linksJSON, m.RatingSum, m.RatingCount, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed movie: %v", err)
	}

	return m
}

// SeedChangeRecord inserts a change record with sensible defaults and returns it.
func SeedChangeRecord(t *testing.T, pool *pgxpool.Pool, rec domain.ChangeRecord) domain.ChangeRecord {
	t.Helper()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Kind == "" {
		rec.Kind = domain.ChangeKindCreate
	}
	if rec.Status == "" {
		rec.Status = domain.ChangeStatusPending
	}
	if rec.SubmittedBy.ID == uuid.Nil {
		rec.SubmittedBy = domain.ActorRef{ID: uuid.New(), Handle: "seeder"}
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	marshalPtr := func(v any, isNil bool) []byte {
		if isNil {
			return nil
		}
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("testhelper: marshal snapshot: %v", err)
		}
		return data
	}

	proposed := marshalPtr(rec.Proposed, rec.Proposed == nil)
	prior := marshalPtr(rec.Prior, rec.Prior == nil)

	var reviewedBy *uuid.UUID
	var reviewedHandle *string
	if rec.ReviewedBy != nil {
		reviewedBy = &rec.ReviewedBy.ID
		reviewedHandle = &rec.ReviewedBy.Handle
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO change_records (id, kind, target_id, proposed, prior, submitted_by,
		                             submitted_handle, status, review_note, reviewed_by,
		                             reviewed_handle, reviewed_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.Kind.String(), rec.TargetID, proposed, prior, rec.SubmittedBy.ID,
		rec.SubmittedBy.Handle, rec.Status.String(), rec.ReviewNote, reviewedBy,
		reviewedHandle, rec.ReviewedAt, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed change record: %v", err)
	}

	return rec
}
