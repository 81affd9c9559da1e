package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a user-facing message produced when an entity crosses into
// a needed, due-soon or expiring-soon state. Only the read flag is mutable.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	EntityID    *uuid.UUID
	Type        NotificationType
	Title       string
	Message     string
	Read        bool
	ReadAt      *time.Time
	DedupKey    string
	Metadata    map[string]any
	CreatedAt   time.Time
}
