package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable record of one mutation to one entity.
type AuditEntry struct {
	ID         uuid.UUID
	Seq        int64
	ActorID    uuid.UUID
	Action     AuditAction
	EntityType EntityKind
	EntityID   uuid.UUID
	OldValue   map[string]any
	NewValue   map[string]any
	IP         string
	UserAgent  string
	CreatedAt  time.Time
}
