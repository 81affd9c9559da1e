// Package notification implements the notification repository using
// PostgreSQL.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/homestock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homestock-backend/internal/domain"
)

const selectColumns = `id, recipient_id, entity_id, type, title, message, read, read_at, dedup_key, metadata, created_at`

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// InsertOnce stores n unless its dedup key has fired before. Fired keys are
// kept in notification_keys, which retention never touches, so a reminder
// deleted by DeleteReadOlderThan is not created again. created is false,
// with a zero notification, when the key was taken.
func (r *Repo) InsertOnce(ctx context.Context, n domain.Notification) (domain.Notification, bool, error) {
	md := n.Metadata
	if md == nil {
		md = map[string]any{}
	}
	mdJSON, err := json.Marshal(md)
	if err != nil {
		return domain.Notification{}, false, fmt.Errorf("notification %s marshal metadata: %w", n.ID, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`WITH fired AS (
		     INSERT INTO notification_keys (dedup_key, created_at)
		     VALUES ($7::text, $9::timestamptz)
		     ON CONFLICT (dedup_key) DO NOTHING
		     RETURNING dedup_key
		 )
		 INSERT INTO notifications (id, recipient_id, entity_id, type, title, message, dedup_key, metadata, created_at)
		 SELECT $1::uuid, $2::uuid, $3::uuid, $4::text, $5::text, $6::text, fired.dedup_key, $8::jsonb, $9::timestamptz
		 FROM fired
		 ON CONFLICT (dedup_key) DO NOTHING
		 RETURNING `+selectColumns,
		n.ID, n.RecipientID, n.EntityID, string(n.Type), n.Title, n.Message, n.DedupKey, mdJSON, n.CreatedAt,
	)

	got, err := scanNotification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Notification{}, false, nil
	}
	if err != nil {
		return domain.Notification{}, false, postgres.MapError(err, "notification", n.ID)
	}
	return got, true, nil
}

// CountUnread returns the number of unread notifications of a recipient.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT read`, recipientID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// List returns a recipient's notifications, newest first.
func (r *Repo) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	b := postgres.Builder.
		Select(selectColumns).
		From("notifications").
		Where(sq.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))
	if unreadOnly {
		b = b.Where(sq.Eq{"read": false})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select notifications: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select notifications: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		return scanNotification(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan notifications: %w", err)
	}
	return out, nil
}

// MarkRead flags one notification as read. Marking twice keeps the first
// read time. Missing or foreign ids return ErrNotFound.
func (r *Repo) MarkRead(ctx context.Context, recipientID, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET read = true, read_at = COALESCE(read_at, $3)
		 WHERE id = $1 AND recipient_id = $2`,
		id, recipientID, at,
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead flags every unread notification of a recipient and returns
// how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID, at time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET read = true, read_at = $2 WHERE recipient_id = $1 AND NOT read`,
		recipientID, at,
	)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteReadOlderThan removes read notifications created before cutoff.
// Their dedup keys stay fired.
func (r *Repo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM notifications WHERE read AND created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var (
		n      domain.Notification
		typ    string
		mdJSON []byte
	)

	err := row.Scan(&n.ID, &n.RecipientID, &n.EntityID, &typ, &n.Title, &n.Message,
		&n.Read, &n.ReadAt, &n.DedupKey, &mdJSON, &n.CreatedAt)
	if err != nil {
		return domain.Notification{}, err
	}

	n.Type = domain.NotificationType(typ)
	if len(mdJSON) > 0 {
		if err := json.Unmarshal(mdJSON, &n.Metadata); err != nil {
			return domain.Notification{}, fmt.Errorf("notification %s unmarshal metadata: %w", n.ID, err)
		}
	}
	return n, nil
}
