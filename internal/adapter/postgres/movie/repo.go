// Package movie implements the catalog store using PostgreSQL.
// It owns the canonical movie records and supports the partial-overwrite
// update semantics the moderation applier relies on.
package movie

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cineamore/cineamore-backend/internal/adapter/postgres"
	"github.com/cineamore/cineamore-backend/internal/domain"
)

const table = "movies"

var columns = []string{
	"id", "alias", "title", "year", "director", "original_title",
	"plot", "notes", "genres", "links", "rating_sum", "rating_count", "created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides movie persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new movie repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// mapScanError maps scany's not-found wrapper before falling back to the
// shared pg error mapping.
func mapScanError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "movie", id)
}

// movieRow mirrors the movies table for scany.
type movieRow struct {
	ID            uuid.UUID `db:"id"`
	Alias         string    `db:"alias"`
	Title         string    `db:"title"`
	Year          *int      `db:"year"`
	Director      string    `db:"director"`
	OriginalTitle string    `db:"original_title"`
	Plot          string    `db:"plot"`
	Notes         string    `db:"notes"`
	Genres        []string  `db:"genres"`
	Links         []byte    `db:"links"`
	RatingSum     int64     `db:"rating_sum"`
	RatingCount   int64     `db:"rating_count"`
	CreatedAt     time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a movie by primary key.
// Returns domain.ErrNotFound if the movie does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movie select: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapScanError(err, id)
	}

	return toDomain(&row)
}

// GetByAlias returns a movie by its human-stable alias key.
func (r *Repo) GetByAlias(ctx context.Context, alias string) (*domain.Movie, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"alias": alias}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movie select: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("movie alias %q: %w", alias, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("movie alias %q: %w", alias, err)
	}

	return toDomain(&row)
}

// Find returns movies matching the filter ordered by created_at DESC,
// plus the total match count for pagination.
func (r *Repo) Find(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterConditions(filter)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build movie count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	query := psql.Select(columns...).From(table).Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build movie select: %w", err)
	}

	var rows []movieRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	movies := make([]*domain.Movie, len(rows))
	for i := range rows {
		m, err := toDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		movies[i] = m
	}

	return movies, total, nil
}

func filterConditions(filter domain.MovieFilter) squirrel.And {
	var where squirrel.And

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + query + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"original_title": pattern},
			squirrel.ILike{"director": pattern},
		})
	}
	if filter.Genre != "" {
		where = append(where, squirrel.Expr("? = ANY(genres)", filter.Genre))
	}
	if filter.Year != nil {
		where = append(where, squirrel.Eq{"year": *filter.Year})
	}

	return where
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new movie and returns the persisted record.
func (r *Repo) Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	linksJSON, err := marshalLinks(m.Links)
	if err != nil {
		return nil, fmt.Errorf("movie %s: %w", m.ID, err)
	}

	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(m.ID, m.Alias, m.Title, m.Year, m.Director, m.OriginalTitle,
			m.Plot, m.Notes, genres, linksJSON, m.RatingSum, m.RatingCount, m.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movie insert: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapScanError(err, m.ID)
	}

	return toDomain(&row)
}

// UpdateFields applies the draft as a field-level partial overwrite: only the
// fields present in the draft are written, everything else is left untouched.
// Returns domain.ErrNotFound if the movie does not exist. An empty draft is a
// no-op read.
func (r *Repo) UpdateFields(ctx context.Context, id uuid.UUID, draft *domain.MovieDraft) (*domain.Movie, error) {
	if draft == nil || draft.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update(table).Where(squirrel.Eq{"id": id})

	if draft.Title != nil {
		update = update.Set("title", *draft.Title)
	}
	if draft.Year != nil {
		update = update.Set("year", *draft.Year)
	}
	if draft.Director != nil {
		update = update.Set("director", *draft.Director)
	}
	if draft.OriginalTitle != nil {
		update = update.Set("original_title", *draft.OriginalTitle)
	}
	if draft.Plot != nil {
		update = update.Set("plot", *draft.Plot)
	}
	if draft.Notes != nil {
		update = update.Set("notes", *draft.Notes)
	}
	if draft.Genres != nil {
		update = update.Set("genres", draft.Genres)
	}
	if draft.Links != nil {
		linksJSON, err := marshalLinks(draft.Links)
		if err != nil {
			return nil, fmt.Errorf("movie %s: %w", id, err)
		}
		update = update.Set("links", linksJSON)
	}

	sql, args, err := update.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movie update: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapScanError(err, id)
	}

	return toDomain(&row)
}

// Delete removes a movie by ID. Returns whether a row was actually deleted;
// deleting an absent movie is not an error so that the applier's delete stays
// idempotent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build movie delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "movie", id)
	}

	return tag.RowsAffected() > 0, nil
}

// AddRating folds one vote into the aggregate rating.
func (r *Repo) AddRating(ctx context.Context, id uuid.UUID, stars int) (*domain.Movie, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("rating_sum", squirrel.Expr("rating_sum + ?", stars)).
		Set("rating_count", squirrel.Expr("rating_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rating update: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapScanError(err, id)
	}

	return toDomain(&row)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row *movieRow) (*domain.Movie, error) {
	m := &domain.Movie{
		ID:            row.ID,
		Alias:         row.Alias,
		Title:         row.Title,
		Year:          row.Year,
		Director:      row.Director,
		OriginalTitle: row.OriginalTitle,
		Plot:          row.Plot,
		Notes:         row.Notes,
		Genres:        row.Genres,
		RatingSum:     row.RatingSum,
		RatingCount:   row.RatingCount,
		CreatedAt:     row.CreatedAt,
	}

	if len(row.Links) > 0 {
		if err := json.Unmarshal(row.Links, &m.Links); err != nil {
			return nil, fmt.Errorf("movie %s: unmarshal links: %w", row.ID, err)
		}
	}
	if m.Links == nil {
		m.Links = []domain.DownloadLink{}
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}

	return m, nil
}

func marshalLinks(links []domain.DownloadLink) ([]byte, error) {
	if links == nil {
		links = []domain.DownloadLink{}
	}
	data, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("marshal links: %w", err)
	}
	return data, nil
}
