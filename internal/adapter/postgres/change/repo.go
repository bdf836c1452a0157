// Package change implements the change record store using PostgreSQL.
// It owns the pending-change queue and the conditional status transition that
// guarantees a record leaves pending exactly once.
package change

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cineamore/cineamore-backend/internal/adapter/postgres"
	"github.com/cineamore/cineamore-backend/internal/domain"
)

const table = "change_records"

var columns = []string{
	"id", "kind", "target_id", "proposed", "prior", "submitted_by",
	"submitted_handle", "status", "review_note", "reviewed_by",
	"reviewed_handle", "reviewed_at", "created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides change record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new change record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// mapScanError maps scany's not-found wrapper before falling back to the
// shared pg error mapping.
func mapScanError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("change_record %s: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "change_record", id)
}

// changeRow mirrors the change_records table for scany.
type changeRow struct {
	ID              uuid.UUID  `db:"id"`
	Kind            string     `db:"kind"`
	TargetID        *uuid.UUID `db:"target_id"`
	Proposed        []byte     `db:"proposed"`
	Prior           []byte     `db:"prior"`
	SubmittedBy     uuid.UUID  `db:"submitted_by"`
	SubmittedHandle string     `db:"submitted_handle"`
	Status          string     `db:"status"`
	ReviewNote      *string    `db:"review_note"`
	ReviewedBy      *uuid.UUID `db:"reviewed_by"`
	ReviewedHandle  *string    `db:"reviewed_handle"`
	ReviewedAt      *time.Time `db:"reviewed_at"`
	CreatedAt       time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new change record and returns the persisted record.
func (r *Repo) Create(ctx context.Context, rec *domain.ChangeRecord) (*domain.ChangeRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	proposedJSON, err := marshalNullable(rec.Proposed)
	if err != nil {
		return nil, fmt.Errorf("change_record %s: marshal proposed: %w", rec.ID, err)
	}
	priorJSON, err := marshalNullable(rec.Prior)
	if err != nil {
		return nil, fmt.Errorf("change_record %s: marshal prior: %w", rec.ID, err)
	}

	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.Kind.String(), rec.TargetID, proposedJSON, priorJSON,
			rec.SubmittedBy.ID, rec.SubmittedBy.Handle, rec.Status.String(),
			rec.ReviewNote, nil, nil, rec.ReviewedAt, rec.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build change_record insert: %w", err)
	}

	var row changeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapScanError(err, rec.ID)
	}

	return toDomain(&row)
}

// CompareAndSetStatus atomically transitions the record from expected to next
// and writes the review metadata in the same statement. Returns false when the
// record is absent or its status no longer matches expected — the caller uses
// that to report a lost race, never a silent no-op.
func (r *Repo) CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next domain.ChangeStatus, meta domain.ReviewMeta) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Update(table).
		Set("status", next.String()).
		Set("reviewed_by", meta.ReviewedBy.ID).
		Set("reviewed_handle", meta.ReviewedBy.Handle).
		Set("reviewed_at", meta.ReviewedAt).
		Set("review_note", meta.Note).
		Where(squirrel.Eq{"id": id, "status": expected.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build status update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "change_record", id)
	}

	return tag.RowsAffected() == 1, nil
}

// DeleteIfPending hard-deletes the record only while it is still pending.
// Returns (found, deleted): (false, false) when the record does not exist,
// (true, false) when it exists but is already terminal.
func (r *Repo) DeleteIfPending(ctx context.Context, id uuid.UUID) (found bool, deleted bool, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "status": domain.ChangeStatusPending.String()}).
		ToSql()
	if err != nil {
		return false, false, fmt.Errorf("build change_record delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, false, postgres.MapError(err, "change_record", id)
	}
	if tag.RowsAffected() == 1 {
		return true, true, nil
	}

	existsSQL, existsArgs, err := psql.Select("1").From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, false, fmt.Errorf("build change_record exists: %w", err)
	}

	var one int
	if err := q.QueryRow(ctx, existsSQL, existsArgs...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, postgres.MapError(err, "change_record", id)
	}

	return true, false, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a change record by primary key.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ChangeRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build change_record select: %w", err)
	}

	var row changeRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, mapScanError(err, id)
	}

	return toDomain(&row)
}

// List returns change records matching the filter ordered by created_at DESC,
// plus the total match count for pagination.
func (r *Repo) List(ctx context.Context, filter domain.ChangeFilter) ([]*domain.ChangeRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var where squirrel.And
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": filter.Status.String()})
	}
	if filter.AuthorID != nil {
		where = append(where, squirrel.Eq{"submitted_by": *filter.AuthorID})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build change_record count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count change_records: %w", err)
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
		return nil, 0, fmt.Errorf("build change_record select: %w", err)
	}

	var rows []changeRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list change_records: %w", err)
	}

	records := make([]*domain.ChangeRecord, len(rows))
	for i := range rows {
		rec, err := toDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		records[i] = rec
	}

	return records, total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row *changeRow) (*domain.ChangeRecord, error) {
	rec := &domain.ChangeRecord{
		ID:       row.ID,
		Kind:     domain.ChangeKind(row.Kind),
		TargetID: row.TargetID,
		SubmittedBy: domain.ActorRef{
			ID:     row.SubmittedBy,
			Handle: row.SubmittedHandle,
		},
		Status:     domain.ChangeStatus(row.Status),
		ReviewNote: row.ReviewNote,
		ReviewedAt: row.ReviewedAt,
		CreatedAt:  row.CreatedAt,
	}

	if row.ReviewedBy != nil {
		ref := domain.ActorRef{ID: *row.ReviewedBy}
		if row.ReviewedHandle != nil {
			ref.Handle = *row.ReviewedHandle
		}
		rec.ReviewedBy = &ref
	}

	if len(row.Proposed) > 0 {
		rec.Proposed = &domain.MovieDraft{}
		if err := json.Unmarshal(row.Proposed, rec.Proposed); err != nil {
			return nil, fmt.Errorf("change_record %s: unmarshal proposed: %w", row.ID, err)
		}
	}
	if len(row.Prior) > 0 {
		rec.Prior = &domain.Movie{}
		if err := json.Unmarshal(row.Prior, rec.Prior); err != nil {
			return nil, fmt.Errorf("change_record %s: unmarshal prior: %w", row.ID, err)
		}
	}

	return rec, nil
}

// marshalNullable marshals v to JSON, mapping a nil pointer to SQL NULL.
func marshalNullable[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
