// Package event implements the append-only operation log using PostgreSQL.
package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/bullion-registry/internal/adapter/postgres"
	"github.com/heartmarshall/bullion-registry/internal/domain"
)

const entity = "event"

const selectColumns = `id, kind, asset_id, actor, payload, created_at`

// Repo provides event log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends event. It joins the caller's transaction when there is one.
func (r *Repo) Log(ctx context.Context, event domain.Event) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if event.Payload == nil {
		event.Payload = map[string]any{}
	}
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("event marshal payload: %w", err)
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err = q.Exec(ctx,
		`INSERT INTO events (id, kind, asset_id, actor, payload, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, string(event.Kind), uuidPtrToPgUUID(event.AssetID), event.Actor, payload,
		event.CreatedAt.Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, entity, event.ID)
	}
	return nil
}

// DeleteOlderThan removes events created before cutoff and returns how many
// were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old events: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByAsset returns the events of assetID in the order they were written.
// A non-positive limit returns all of them.
func (r *Repo) ListByAsset(ctx context.Context, assetID uuid.UUID, limit int) ([]domain.Event, error) {
	sql := `SELECT ` + selectColumns + ` FROM events WHERE asset_id = $1 ORDER BY seq`
	args := []any{assetID}
	if limit > 0 {
		sql += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.query(ctx, "list events by asset", sql, args...)
}

// List returns the most recent events across all assets, newest first.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Event, error) {
	sql := `SELECT ` + selectColumns + ` FROM events ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.query(ctx, "list events", sql, args...)
}

func (r *Repo) query(ctx context.Context, op, sql string, args ...any) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e       domain.Event
		kind    string
		assetID pgtype.UUID
		payload []byte
	)
	if err := row.Scan(&e.ID, &kind, &assetID, &e.Actor, &payload, &e.CreatedAt); err != nil {
		return domain.Event{}, err
	}

	e.Kind = domain.EventKind(kind)
	if assetID.Valid {
		id := uuid.UUID(assetID.Bytes)
		e.AssetID = &id
	}

	// Amounts are uint64; decode numbers without going through float64.
	if len(payload) > 0 {
		dec := json.NewDecoder(bytes.NewReader(payload))
		dec.UseNumber()
		if err := dec.Decode(&e.Payload); err != nil {
			return domain.Event{}, fmt.Errorf("event %s unmarshal payload: %w", e.ID, err)
		}
	}
	return e, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
