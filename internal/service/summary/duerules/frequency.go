// Package duerules holds the pure decision functions of the recommendation
// engine: frequency-to-interval mapping, due status classification and the
// reorder recommendation. Nothing here touches storage, context or logging.
package duerules

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// Frequency is a recurrence label for maintenance schedules.
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyBiweekly   Frequency = "biweekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

// DefaultFrequency is used for unrecognised labels in tolerant mode.
const DefaultFrequency = FrequencyMonthly

const day = 24 * time.Hour

// Fixed day counts, not calendar arithmetic: "monthly" is always 30 days.
var frequencyDurations = map[Frequency]time.Duration{
	FrequencyDaily:      day,
	FrequencyWeekly:     7 * day,
	FrequencyBiweekly:   14 * day,
	FrequencyMonthly:    30 * day,
	FrequencyQuarterly:  90 * day,
	FrequencySemiannual: 182 * day,
	FrequencyAnnual:     365 * day,
}

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	_, ok := frequencyDurations[f]
	return ok
}

// Duration returns the interval a frequency maps to, zero if unknown.
func (f Frequency) Duration() time.Duration {
	return frequencyDurations[f]
}

// ParseFrequency normalises a label (trimmed, case-insensitive) and returns
// domain.ErrInvalidFrequency when it is not one of the known values.
func ParseFrequency(label string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(label)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFrequency, label)
	}
	return f, nil
}

// Calculator maps frequency labels to next-due timestamps.
//
// In tolerant mode (Strict == false) an unknown label falls back to
// DefaultFrequency; in strict mode it is an error.
type Calculator struct {
	Strict bool
}

// Resolve returns the frequency to use for label. fellBack is true when the
// tolerant default was applied.
func (c Calculator) Resolve(label string) (f Frequency, fellBack bool, err error) {
	f, err = ParseFrequency(label)
	if err == nil {
		return f, false, nil
	}
	if c.Strict {
		return "", false, err
	}
	return DefaultFrequency, true, nil
}

// NextDue returns from + interval(label). A nil from (never happened) is
// treated as now.
func (c Calculator) NextDue(label string, from *time.Time, now time.Time) (next time.Time, fellBack bool, err error) {
	f, fellBack, err := c.Resolve(label)
	if err != nil {
		return time.Time{}, false, err
	}
	base := now
	if from != nil {
		base = *from
	}
	return base.Add(f.Duration()), fellBack, nil
}
