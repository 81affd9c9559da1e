package summary

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/summary/duerules"
)

// AggregateOptions bound the recent-events list of a summary.
type AggregateOptions struct {
	// RecentWindow is how far back an event still counts as recent.
	RecentWindow time.Duration
	// RecentMax caps the list length.
	RecentMax int
}

// Aggregator folds tracked entities of one kind into a Summary. Feed every
// entity with Add, then call Summary.
type Aggregator struct {
	rules  duerules.Evaluator
	opts   AggregateOptions
	now    time.Time
	sum    domain.Summary
	recent []domain.RecentEvent
}

// NewAggregator starts an empty summary of kind evaluated at now.
func NewAggregator(kind domain.EntityKind, rules duerules.Evaluator, opts AggregateOptions, now time.Time) *Aggregator {
	return &Aggregator{
		rules: rules,
		opts:  opts,
		now:   now,
		sum: domain.Summary{
			Kind:        kind,
			TotalValue:  decimal.Zero,
			GeneratedAt: now,
		},
	}
}

// Add evaluates e and updates the counters. An entity that fails evaluation
// is counted as skipped and left out of every other figure.
func (a *Aggregator) Add(e domain.TrackedEntity) (duerules.Outcome, error) {
	out, err := a.rules.EvaluateEntity(e, a.now)
	if err != nil {
		a.sum.Skipped++
		return duerules.Outcome{}, err
	}

	a.sum.Total++
	if out.Needed {
		a.sum.NeedsAction++
	}
	switch {
	case out.Status.IsUpcoming():
		a.sum.DueSoon++
	case out.Status.IsLapsed():
		a.sum.Overdue++
	}
	a.sum.TotalValue = a.sum.TotalValue.Add(e.Value())

	if e.LastEventAt != nil && a.isRecent(*e.LastEventAt) {
		a.recent = append(a.recent, domain.RecentEvent{ID: e.ID, Name: e.Name, Date: *e.LastEventAt})
		if len(a.recent) > 2*a.opts.RecentMax+16 {
			a.trim()
		}
	}
	return out, nil
}

// Summary returns the summary of everything added so far.
func (a *Aggregator) Summary() domain.Summary {
	a.trim()
	s := a.sum
	s.Recent = slices.Clone(a.recent)
	if s.Recent == nil {
		s.Recent = []domain.RecentEvent{}
	}
	return s
}

func (a *Aggregator) isRecent(t time.Time) bool {
	return !t.After(a.now) && !t.Before(a.now.Add(-a.opts.RecentWindow))
}

// trim sorts recent events newest first and keeps at most RecentMax.
func (a *Aggregator) trim() {
	slices.SortFunc(a.recent, func(x, y domain.RecentEvent) int {
		if c := y.Date.Compare(x.Date); c != 0 {
			return c
		}
		return strings.Compare(x.ID.String(), y.ID.String())
	})
	limit := max(a.opts.RecentMax, 0)
	if len(a.recent) > limit {
		a.recent = a.recent[:limit]
	}
}
