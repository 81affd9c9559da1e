package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/homestock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homestock-backend/internal/config"
)

const readHeaderTimeout = 5 * time.Second

// Run starts the API server, the scheduler and the audit retry worker and
// blocks until ctx is cancelled or one of them fails. On shutdown the HTTP
// server drains first so in-flight mutations can still queue audit retries.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		n, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "migrations applied", slog.Int("count", n))
	}

	c, err := Wire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:              ServerAddr(cfg.Server),
		Handler:           c.Handler(cfg.CORS, BuildVersion()),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	workerCtx, stopWorker := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Audit.RunRetryWorker(workerCtx)
	})

	if cfg.Schedule.Enabled {
		if err := c.Scheduler.Start(gctx); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "scheduled refresh disabled")
	}

	g.Go(func() error {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		c.Scheduler.Stop()
		stopWorker()
		if err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// ServerAddr joins host and port into a listen address.
func ServerAddr(cfg config.ServerConfig) string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}
