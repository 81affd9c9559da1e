// Package entity implements tracked-entity persistence using PostgreSQL.
package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/homestock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homestock-backend/internal/domain"
)

const table = "tracked_entities"

var columns = []string{
	"id", "owner_id", "kind", "name", "quantity", "threshold", "interval_seconds",
	"unit_price::text", "frequency", "last_event_at", "breached_at", "ends_at", "metadata",
	"created_at", "updated_at",
}

// Repo provides tracked-entity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts e and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.TrackedEntity) (domain.TrackedEntity, error) {
	md, err := marshalMetadata(e.Metadata)
	if err != nil {
		return domain.TrackedEntity{}, err
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "owner_id", "kind", "name", "quantity", "threshold", "interval_seconds",
			"unit_price", "frequency", "last_event_at", "breached_at", "ends_at", "metadata", "created_at", "updated_at").
		Values(e.ID, e.OwnerID, string(e.Kind), e.Name, e.Quantity, e.Threshold, intervalSeconds(e.Interval),
			sq.Expr("CAST(?::text AS numeric)", e.UnitPrice.String()), e.Frequency, e.LastEventAt, e.BreachedAt, e.EndsAt, md,
			e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.TrackedEntity{}, fmt.Errorf("build insert tracked_entity: %w", err)
	}

	got, err := scanEntity(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.TrackedEntity{}, postgres.MapError(err, "tracked_entity", e.ID)
	}
	return got, nil
}

// Update overwrites every mutable column of e. The owner must match.
func (r *Repo) Update(ctx context.Context, e domain.TrackedEntity) (domain.TrackedEntity, error) {
	md, err := marshalMetadata(e.Metadata)
	if err != nil {
		return domain.TrackedEntity{}, err
	}

	query, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"name":             e.Name,
			"quantity":         e.Quantity,
			"threshold":        e.Threshold,
			"interval_seconds": intervalSeconds(e.Interval),
			"unit_price":       sq.Expr("CAST(?::text AS numeric)", e.UnitPrice.String()),
			"frequency":        e.Frequency,
			"last_event_at":    e.LastEventAt,
			"breached_at":      e.BreachedAt,
			"ends_at":          e.EndsAt,
			"metadata":         md,
			"updated_at":       e.UpdatedAt,
		}).
		Where(sq.Eq{"id": e.ID, "owner_id": e.OwnerID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.TrackedEntity{}, fmt.Errorf("build update tracked_entity: %w", err)
	}

	got, err := scanEntity(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.TrackedEntity{}, postgres.MapError(err, "tracked_entity", e.ID)
	}
	return got, nil
}

// Delete removes the entity. Missing or foreign rows return ErrNotFound.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM tracked_entities WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "tracked_entity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tracked_entity %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns one entity of the owner.
func (r *Repo) Get(ctx context.Context, ownerID, id uuid.UUID) (domain.TrackedEntity, error) {
	return r.get(ctx, ownerID, id, "")
}

// GetForUpdate is Get with a row lock. It must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (domain.TrackedEntity, error) {
	return r.get(ctx, ownerID, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, ownerID, id uuid.UUID, suffix string) (domain.TrackedEntity, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.TrackedEntity{}, fmt.Errorf("build select tracked_entity: %w", err)
	}

	got, err := scanEntity(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.TrackedEntity{}, postgres.MapError(err, "tracked_entity", id)
	}
	return got, nil
}

// List returns the owner's entities ordered by name.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, f domain.EntityFilter) ([]domain.TrackedEntity, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("name", "id")
	if f.Kind != "" {
		b = b.Where(sq.Eq{"kind": string(f.Kind)})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	return r.query(ctx, b)
}

// ScanByOwnerKind returns up to limit entities of one owner and kind with id
// greater than after, ordered by id. Pass uuid.Nil to start.
func (r *Repo) ScanByOwnerKind(ctx context.Context, ownerID uuid.UUID, kind domain.EntityKind, after uuid.UUID, limit int) ([]domain.TrackedEntity, error) {
	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID, "kind": string(kind)}).
		Where(sq.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit))

	return r.query(ctx, b)
}

// ListOwners returns up to limit distinct owners greater than after, ordered.
func (r *Repo) ListOwners(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT DISTINCT owner_id FROM tracked_entities WHERE owner_id > $1 ORDER BY owner_id LIMIT $2`,
		after, limit)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}

	owners, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return owners, nil
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.TrackedEntity, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tracked_entities: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select tracked_entities: %w", err)
	}
	defer rows.Close()

	var out []domain.TrackedEntity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tracked_entity: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracked_entities: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func returning() string {
	return strings.Join(columns, ", ")
}

func scanEntity(row pgx.Row) (domain.TrackedEntity, error) {
	var (
		e        domain.TrackedEntity
		kind     string
		interval *int64
		price    string
		md       []byte
	)

	err := row.Scan(
		&e.ID, &e.OwnerID, &kind, &e.Name, &e.Quantity, &e.Threshold, &interval,
		&price, &e.Frequency, &e.LastEventAt, &e.BreachedAt, &e.EndsAt, &md,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.TrackedEntity{}, err
	}

	e.Kind = domain.EntityKind(kind)
	if interval != nil {
		d := time.Duration(*interval) * time.Second
		e.Interval = &d
	}
	if e.UnitPrice, err = decimal.NewFromString(price); err != nil {
		return domain.TrackedEntity{}, fmt.Errorf("tracked_entity %s unit_price: %w", e.ID, err)
	}
	if len(md) > 0 {
		if err := json.Unmarshal(md, &e.Metadata); err != nil {
			return domain.TrackedEntity{}, fmt.Errorf("tracked_entity %s unmarshal metadata: %w", e.ID, err)
		}
	}
	return e, nil
}

func marshalMetadata(md map[string]string) ([]byte, error) {
	if md == nil {
		md = map[string]string{}
	}
	b, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("tracked_entity marshal metadata: %w", err)
	}
	return b, nil
}

func intervalSeconds(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	s := int64(d.Seconds())
	return &s
}
