package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/homestock-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/homestock-backend/internal/adapter/postgres/audit"
	entityrepo "github.com/heartmarshall/homestock-backend/internal/adapter/postgres/entity"
	notificationrepo "github.com/heartmarshall/homestock-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/homestock-backend/internal/cache"
	"github.com/heartmarshall/homestock-backend/internal/config"
	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/scheduler"
	"github.com/heartmarshall/homestock-backend/internal/service/audit"
	"github.com/heartmarshall/homestock-backend/internal/service/inventory"
	"github.com/heartmarshall/homestock-backend/internal/service/notification"
	"github.com/heartmarshall/homestock-backend/internal/service/summary"
	"github.com/heartmarshall/homestock-backend/internal/service/summary/duerules"
	"github.com/heartmarshall/homestock-backend/internal/transport/rest"
)

// Container holds the wired services of one process.
type Container struct {
	Pool          *pgxpool.Pool
	Clock         clockwork.Clock
	Summaries     *cache.Cache[domain.Summary]
	Audit         *audit.Service
	Notifications *notification.Service
	Summary       *summary.Service
	Inventory     *inventory.Service
	Scheduler     *scheduler.Ticker

	log *slog.Logger
}

// Wire connects to the database and builds every service. Close releases
// the pool.
func Wire(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	clock := clockwork.NewRealClock()
	tx := postgres.NewTxManager(pool)
	rules := Rules(cfg.Rules)

	entities := entityrepo.New(pool)
	summaries := cache.New[domain.Summary](cache.Options{
		MaxEntries: cfg.Cache.MaxEntries,
		MaxAge:     cfg.Cache.MaxAge,
	})

	auditSvc := audit.NewService(logger, auditrepo.New(pool), tx, clock, audit.Config{
		Strict:         cfg.Audit.IsStrict(),
		RetryAttempts:  cfg.Audit.RetryAttempts,
		RetryBaseDelay: cfg.Audit.RetryBaseDelay,
		QueueSize:      cfg.Audit.QueueSize,
	})
	notifySvc := notification.NewService(logger, notificationrepo.New(pool), clock)
	summarySvc := summary.NewService(logger, entities, summaries, notifySvc, clock, summary.Config{
		Rules:          rules,
		RecentWindow:   cfg.Rules.RecentWindow,
		RecentMax:      cfg.Rules.RecentMax,
		BatchSize:      cfg.Schedule.BatchSize,
		RefreshTimeout: cfg.Schedule.RefreshTimeout,
	})
	inventorySvc := inventory.NewService(logger, entities, auditSvc, summarySvc, notifySvc, tx, rules, clock)

	ticker := scheduler.New(logger, summarySvc, clock, scheduler.Config{
		Interval:   cfg.Schedule.RefreshInterval,
		Timeout:    cfg.Schedule.RefreshTimeout,
		RunOnStart: cfg.Schedule.RunOnStart,
	})

	return &Container{
		Pool:          pool,
		Clock:         clock,
		Summaries:     summaries,
		Audit:         auditSvc,
		Notifications: notifySvc,
		Summary:       summarySvc,
		Inventory:     inventorySvc,
		Scheduler:     ticker,
		log:           logger,
	}, nil
}

// Handler builds the HTTP API on top of the container's services.
func (c *Container) Handler(cors config.CORSConfig, version string) http.Handler {
	return rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(c.Pool, version),
		Summary:      rest.NewSummaryHandler(c.Summary, c.log),
		Entity:       rest.NewEntityHandler(c.Inventory, c.log),
		Audit:        rest.NewAuditHandler(c.Audit, c.Inventory, c.log),
		Notification: rest.NewNotificationHandler(c.Notifications, c.log),
	}, cors, c.log)
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}

// Rules builds the due-date evaluator from configuration.
func Rules(cfg config.RulesConfig) duerules.Evaluator {
	return duerules.Evaluator{
		Calculator: duerules.Calculator{Strict: cfg.StrictFrequency},
		Windows: duerules.Windows{
			Maintenance: cfg.MaintenanceLookahead,
			Warranty:    cfg.WarrantyLookahead,
		},
	}
}
