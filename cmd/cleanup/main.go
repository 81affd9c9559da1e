// Command cleanup deletes audit entries and read notifications older than
// their configured retention. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/homestock-backend/internal/app"
	"github.com/heartmarshall/homestock-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	c, err := app.Wire(ctx, cfg, logger)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	failed := false

	auditDeleted, err := c.Audit.Cleanup(ctx, cfg.Audit.Retention())
	if err != nil {
		logger.Error("audit cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Audit.RetentionDays),
		)
		failed = true
	}

	notifDeleted, err := c.Notifications.Cleanup(ctx, cfg.Notification.Retention())
	if err != nil {
		logger.Error("notification cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Notification.RetentionDays),
		)
		failed = true
	}

	if failed {
		c.Close()
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("audit_deleted", auditDeleted),
		slog.Int64("notifications_deleted", notifDeleted),
	)
}
