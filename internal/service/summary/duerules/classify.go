package duerules

import (
	"time"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// Scale selects the status vocabulary used by Classify.
type Scale int

const (
	// ScaleSchedule yields scheduled / due_soon / overdue.
	ScaleSchedule Scale = iota
	// ScaleExpiry yields active / expiring_soon / expired.
	ScaleExpiry
)

// Classify places nextDue relative to now:
//
//	nextDue <  now                  -> overdue / expired
//	now <= nextDue <= now+lookahead -> due_soon / expiring_soon
//	otherwise                       -> scheduled / active
func Classify(scale Scale, nextDue, now time.Time, lookahead time.Duration) domain.DueStatus {
	switch {
	case nextDue.Before(now):
		if scale == ScaleExpiry {
			return domain.DueStatusExpired
		}
		return domain.DueStatusOverdue
	case !nextDue.After(now.Add(lookahead)):
		if scale == ScaleExpiry {
			return domain.DueStatusExpiringSoon
		}
		return domain.DueStatusDueSoon
	default:
		if scale == ScaleExpiry {
			return domain.DueStatusActive
		}
		return domain.DueStatusScheduled
	}
}
