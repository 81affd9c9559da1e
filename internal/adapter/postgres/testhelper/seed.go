package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// SeedStockItem inserts a stock item for owner and returns it.
func SeedStockItem(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, name string, qty, threshold int) domain.TrackedEntity {
	t.Helper()
	e := newEntity(owner, domain.EntityKindStockItem, name)
	e.Quantity = &qty
	e.Threshold = threshold
	insertEntity(t, pool, e)
	return e
}

// SeedMaintenance inserts a maintenance schedule for owner and returns it.
func SeedMaintenance(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, name, frequency string, last *time.Time) domain.TrackedEntity {
	t.Helper()
	e := newEntity(owner, domain.EntityKindMaintenance, name)
	e.Frequency = frequency
	e.LastEventAt = last
	insertEntity(t, pool, e)
	return e
}

// SeedWarranty inserts a warranty for owner and returns it.
func SeedWarranty(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, name string, endsAt time.Time) domain.TrackedEntity {
	t.Helper()
	e := newEntity(owner, domain.EntityKindWarranty, name)
	e.EndsAt = &endsAt
	insertEntity(t, pool, e)
	return e
}

func newEntity(owner uuid.UUID, kind domain.EntityKind, name string) domain.TrackedEntity {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.TrackedEntity{
		ID:        uuid.New(),
		OwnerID:   owner,
		Kind:      kind,
		Name:      name,
		Metadata:  map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func insertEntity(t *testing.T, pool *pgxpool.Pool, e domain.TrackedEntity) {
	t.Helper()

	md, err := json.Marshal(e.Metadata)
	if err != nil {
		t.Fatalf("testhelper: marshal metadata: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO tracked_entities
		    (id, owner_id, kind, name, quantity, threshold, frequency, last_event_at, ends_at, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.OwnerID, string(e.Kind), e.Name, e.Quantity, e.Threshold, e.Frequency,
		e.LastEventAt, e.EndsAt, md, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: insert tracked entity: %v", err)
	}
}
