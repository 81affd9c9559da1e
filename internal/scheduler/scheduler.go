// Package scheduler triggers the periodic summary refresh.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/homestock-backend/internal/service/summary"
)

// ErrAlreadyRunning is returned by Start when the loop is already running.
var ErrAlreadyRunning = errors.New("scheduler already running")

// Refresher is the job the scheduler drives.
type Refresher interface {
	Refresh(ctx context.Context) (summary.RefreshReport, error)
}

// Config controls the refresh cadence.
type Config struct {
	Interval   time.Duration
	Timeout    time.Duration
	RunOnStart bool
}

// Run is the outcome of the latest refresh.
type Run struct {
	At     time.Time
	Report summary.RefreshReport
	Err    error
}

// Ticker calls Refresh every Interval until stopped. Each run gets its own
// Timeout; a run that fails is logged and retried on the next tick.
type Ticker struct {
	refresher Refresher
	clock     clockwork.Clock
	cfg       Config
	log       *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	last   *Run
}

// New creates a stopped Ticker.
func New(log *slog.Logger, refresher Refresher, clock clockwork.Clock, cfg Config) *Ticker {
	return &Ticker{
		refresher: refresher,
		clock:     clock,
		cfg:       cfg,
		log:       log.With("component", "scheduler"),
	}
}

// Start launches the loop in the background. It stops when ctx is done or
// Stop is called.
func (t *Ticker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done != nil {
		return ErrAlreadyRunning
	}

	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})
	go t.loop(ctx, t.done)

	t.log.InfoContext(ctx, "scheduler started",
		slog.Duration("interval", t.cfg.Interval),
		slog.Bool("run_on_start", t.cfg.RunOnStart),
	)
	return nil
}

// Stop cancels the loop and waits for a run in progress to return.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if done == nil {
		return
	}
	cancel()
	<-done
	t.log.Info("scheduler stopped")
}

// RunNow refreshes immediately in the caller's goroutine.
func (t *Ticker) RunNow(ctx context.Context) (summary.RefreshReport, error) {
	return t.runOnce(ctx)
}

// Last returns the latest run, or nil before the first one.
func (t *Ticker) Last() *Run {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last == nil {
		return nil
	}
	r := *t.last
	return &r
}

func (t *Ticker) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := t.clock.NewTicker(t.cfg.Interval)
	defer ticker.Stop()

	if t.cfg.RunOnStart {
		_, _ = t.runOnce(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			_, _ = t.runOnce(ctx)
		}
	}
}

func (t *Ticker) runOnce(ctx context.Context) (summary.RefreshReport, error) {
	if t.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}

	at := t.clock.Now()
	report, err := t.refresher.Refresh(ctx)

	t.mu.Lock()
	t.last = &Run{At: at, Report: report, Err: err}
	t.mu.Unlock()

	if err != nil {
		t.log.ErrorContext(ctx, "scheduled refresh failed", slog.String("error", err.Error()))
	}
	return report, err
}
