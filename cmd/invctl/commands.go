package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/homestock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homestock-backend/internal/app"
	"github.com/heartmarshall/homestock-backend/internal/config"
	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

var jsonFlag = &cli.BoolFlag{Name: "json", Usage: "output raw JSON"}

// withContainer loads configuration, wires the services and runs fn.
func withContainer(ctx context.Context, fn func(*app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	c, err := app.Wire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Database migrations",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply pending migrations",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					n, err := postgres.Migrate(ctx, cfg.Database.DSN)
					if err != nil {
						return err
					}
					fmt.Printf("applied %d migration(s)\n", n)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "Show migration status",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					status, err := postgres.MigrationStatus(ctx, cfg.Database.DSN)
					if err != nil {
						return err
					}

					tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
					for _, s := range status {
						applied := "-"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.Format(time.RFC3339)
						}
						fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
					}
					return tw.Flush()
				},
			},
		},
	}
}

func refreshCommand() *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Recompute every summary and emit pending notifications",
		Flags: []cli.Flag{jsonFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				report, err := c.Scheduler.RunNow(ctx)
				if err != nil {
					return err
				}
				if cmd.Bool("json") {
					return printJSON(report)
				}
				fmt.Printf("owners=%d summaries=%d entities=%d skipped=%d notified=%d notify_errors=%d duration=%s\n",
					report.Owners, report.Summaries, report.Entities, report.Skipped,
					report.Notified, report.NotifyErrors, report.Duration)
				return nil
			})
		},
	}
}

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Query the audit log (by entity, by actor, or most recent)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "entity", Usage: "entity id"},
			&cli.StringFlag{Name: "entity-type", Usage: "stock_item, warranty or maintenance"},
			&cli.StringFlag{Name: "actor", Usage: "actor id"},
			&cli.IntFlag{Name: "limit", Value: 50, Usage: "maximum entries"},
			jsonFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withContainer(ctx, func(c *app.Container) error {
				limit := int(cmd.Int("limit"))

				var (
					entries []domain.AuditEntry
					err     error
				)
				switch {
				case cmd.String("entity") != "":
					id, perr := uuid.Parse(cmd.String("entity"))
					if perr != nil {
						return fmt.Errorf("--entity: %w", perr)
					}
					entries, err = c.Audit.ByEntity(ctx, domain.EntityKind(cmd.String("entity-type")), id, limit)
				case cmd.String("actor") != "":
					id, perr := uuid.Parse(cmd.String("actor"))
					if perr != nil {
						return fmt.Errorf("--actor: %w", perr)
					}
					entries, err = c.Audit.ByActor(ctx, id, limit)
				default:
					entries, err = c.Audit.Recent(ctx, limit)
				}
				if err != nil {
					return err
				}

				if cmd.Bool("json") {
					return printJSON(entries)
				}
				tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "SEQ\tAT\tACTOR\tACTION\tTYPE\tENTITY")
				for _, e := range entries {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
						e.Seq, e.CreatedAt.Format(time.RFC3339), e.ActorID, e.Action, e.EntityType, e.EntityID)
				}
				return tw.Flush()
			})
		},
	}
}

func evaluateCommand() *cli.Command {
	return &cli.Command{
		Name:  "evaluate",
		Usage: "Evaluate one entity on behalf of its owner",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "owner", Required: true, Usage: "owner id"},
			&cli.StringFlag{Name: "id", Required: true, Usage: "entity id"},
			jsonFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			owner, err := uuid.Parse(cmd.String("owner"))
			if err != nil {
				return fmt.Errorf("--owner: %w", err)
			}
			id, err := uuid.Parse(cmd.String("id"))
			if err != nil {
				return fmt.Errorf("--id: %w", err)
			}

			return withContainer(ctx, func(c *app.Container) error {
				ev, err := c.Summary.EvaluateEntity(ctxutil.WithActorID(ctx, owner), id)
				if err != nil {
					return err
				}
				if cmd.Bool("json") {
					return printJSON(ev)
				}

				next := "-"
				if ev.NextDue != nil {
					next = ev.NextDue.Format(time.RFC3339)
				}
				fmt.Printf("%s (%s): status=%s needed=%t reason=%s next_due=%s\n",
					ev.Name, ev.Kind, ev.Status, ev.Needed, ev.Reason, next)
				return nil
			})
		},
	}
}
