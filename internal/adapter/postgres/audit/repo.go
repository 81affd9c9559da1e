// Package audit implements the audit log repository using PostgreSQL.
// Entries are append-only; the only destructive operation is retention
// cleanup.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/homestock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends entry. Re-inserting an existing ID is a no-op, which makes
// retried writes safe; inserted reports whether a row was written.
func (r *Repo) Insert(ctx context.Context, entry domain.AuditEntry) (inserted bool, err error) {
	oldJSON, err := marshalSnapshot(entry.OldValue)
	if err != nil {
		return false, fmt.Errorf("audit_entry %s marshal old_value: %w", entry.ID, err)
	}
	newJSON, err := marshalSnapshot(entry.NewValue)
	if err != nil {
		return false, fmt.Errorf("audit_entry %s marshal new_value: %w", entry.ID, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO audit_log (id, actor_id, action, entity_type, entity_id, old_value, new_value, ip, user_agent, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		entry.ID, entry.ActorID, string(entry.Action), string(entry.EntityType), entry.EntityID,
		oldJSON, newJSON, entry.IP, entry.UserAgent, entry.CreatedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "audit_entry", entry.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteOlderThan removes entries created before cutoff and returns the count.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM audit_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete audit_log older than %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ByEntity returns the history of one entity, newest first.
func (r *Repo) ByEntity(ctx context.Context, entityType domain.EntityKind, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	return r.list(ctx, sq.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit)
}

// ByActor returns entries written by one actor, newest first.
func (r *Repo) ByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	return r.list(ctx, sq.Eq{"actor_id": actorID}, limit)
}

// Recent returns the newest entries across the whole log.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return r.list(ctx, nil, limit)
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer, limit int) ([]domain.AuditEntry, error) {
	b := postgres.Builder.
		Select("id", "seq", "actor_id", "action", "entity_type", "entity_id",
			"old_value", "new_value", "ip", "user_agent", "created_at").
		From("audit_log").
		OrderBy("created_at DESC", "seq DESC").
		Limit(uint64(limit))
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select audit_log: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select audit_log: %w", err)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("scan audit_log: %w", err)
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.CollectableRow) (domain.AuditEntry, error) {
	var (
		e                domain.AuditEntry
		action, entity   string
		oldJSON, newJSON []byte
	)

	err := row.Scan(&e.ID, &e.Seq, &e.ActorID, &action, &entity, &e.EntityID,
		&oldJSON, &newJSON, &e.IP, &e.UserAgent, &e.CreatedAt)
	if err != nil {
		return domain.AuditEntry{}, err
	}

	e.Action = domain.AuditAction(action)
	e.EntityType = domain.EntityKind(entity)
	if e.OldValue, err = unmarshalSnapshot(oldJSON); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_entry %s unmarshal old_value: %w", e.ID, err)
	}
	if e.NewValue, err = unmarshalSnapshot(newJSON); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_entry %s unmarshal new_value: %w", e.ID, err)
	}
	return e, nil
}

// marshalSnapshot maps a nil snapshot to SQL NULL.
func marshalSnapshot(v map[string]any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalSnapshot(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
