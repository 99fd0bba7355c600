package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"transaction-explorer/internal/config"
	"transaction-explorer/internal/database"
	"transaction-explorer/internal/export"
	"transaction-explorer/internal/models"
	"transaction-explorer/internal/repositories"
	"transaction-explorer/internal/services"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ledgerctl:", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ledgerctl",
		Usage: "operate the transaction ledger database",
		Commands: []*cli.Command{
			migrateCommand(),
			exportCommand(),
			calendarCommand(),
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the postgres schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "seeds", Usage: "directory of seed .sql files to load after migrating"},
				},
				Action: func(c *cli.Context) error {
					return withMigrationRunner(func(runner *database.MigrationRunner) error {
						if dir := c.String("seeds"); dir != "" {
							runner.WithSeeds(dir)
						}
						return runner.RunMigrations()
					})
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					steps := c.Int("steps")
					if steps < 1 {
						return cli.Exit("--steps must be at least 1", 2)
					}
					return withMigrationRunner(func(runner *database.MigrationRunner) error {
						return runner.RollbackMigrations(steps)
					})
				},
			},
			{
				Name:  "status",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					return withMigrationRunner(func(runner *database.MigrationRunner) error {
						version, dirty, err := runner.GetMigrationStatus()
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "version=%d dirty=%t\n", version, dirty)
						return nil
					})
				},
			},
		},
	}
}

func withMigrationRunner(fn func(*database.MigrationRunner) error) error {
	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		return cli.Exit("migrations require DB_DRIVER=postgres", 2)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}
	return fn(runner)
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "start date (RFC 3339 or YYYY-MM-DD), inclusive"},
		&cli.StringFlag{Name: "to", Usage: "end date (RFC 3339 or YYYY-MM-DD), inclusive"},
		&cli.StringFlag{Name: "merchant", Usage: "exact merchant name"},
		&cli.StringFlag{Name: "min-amount", Usage: "minimum amount in major units, e.g. 12.50"},
		&cli.StringFlag{Name: "max-amount", Usage: "maximum amount in major units"},
	}
}

func criteriaFromFlags(c *cli.Context) (models.FilterCriteria, error) {
	criteria, err := models.ParseFilterCriteria(models.FilterParams{
		From:       c.String("from"),
		To:         c.String("to"),
		Merchant:   c.String("merchant"),
		MinAmount:  c.String("min-amount"),
		MaxAmount:  c.String("max-amount"),
		AmountUnit: models.AmountUnitMajor,
	})
	if err != nil {
		return models.FilterCriteria{}, cli.Exit(err.Error(), 2)
	}
	return criteria, nil
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write every transaction matching the filters as CSV",
		Flags: append(filterFlags(),
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
		),
		Action: func(c *cli.Context) error {
			criteria, err := criteriaFromFlags(c)
			if err != nil {
				return err
			}

			return withLedger(func(ledger *services.Ledger) error {
				rows, err := ledger.ExportSweep.Collect(c.Context, criteria)
				if err != nil {
					return err
				}

				var out io.Writer = c.App.Writer
				if path := c.String("output"); path != "" {
					f, err := os.Create(path)
					if err != nil {
						return fmt.Errorf("failed to create %s: %w", path, err)
					}
					defer f.Close()
					out = f
				}

				if err := export.WriteCSV(out, rows); err != nil {
					return err
				}
				slog.Info("Export complete", "rows", len(rows))
				return nil
			})
		},
	}
}

func calendarCommand() *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "print daily totals for one or more consecutive months",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "month", Required: true, Usage: "first month (1-12)"},
			&cli.IntFlag{Name: "year", Required: true, Usage: "year of the first month"},
			&cli.IntFlag{Name: "months", Value: 1, Usage: "number of consecutive months"},
			&cli.StringFlag{Name: "from", Usage: "start date, inclusive"},
			&cli.StringFlag{Name: "to", Usage: "end date, inclusive"},
		},
		Action: func(c *cli.Context) error {
			first, err := models.NewCalendarMonth(c.Int("month"), c.Int("year"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if c.Int("months") < 1 {
				return cli.Exit("--months must be at least 1", 2)
			}

			months := make([]models.CalendarMonth, 0, c.Int("months"))
			for m := first; len(months) < cap(months); m = m.Next() {
				months = append(months, m)
			}

			scope, err := criteriaFromFlags(c)
			if err != nil {
				return err
			}

			return withLedger(func(ledger *services.Ledger) error {
				results, err := ledger.DailyAggregator.GetDailyTotalsForMonths(c.Context, months, scope)
				if err != nil {
					return err
				}

				for i, totals := range results {
					printMonth(c.App.Writer, months[i], totals)
				}
				return nil
			})
		},
	}
}

func printMonth(w io.Writer, month models.CalendarMonth, totals models.DailyTotals) {
	totalCents, count := totals.Sum()
	fmt.Fprintf(w, "%s  total=%s  transactions=%d\n", month, export.MajorAmount(totalCents), count)
	for day := month.Start(); day.Before(month.End()); day = day.AddDate(0, 0, 1) {
		key := day.Format(models.DayKeyLayout)
		if total, ok := totals[key]; ok {
			fmt.Fprintf(w, "  %s  %12s  %d\n", key, export.MajorAmount(total.TotalAmountCents), total.TransactionCount)
		}
	}
}

func withLedger(fn func(*services.Ledger) error) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ledger := services.NewLedger(
		repositories.NewTransactionRepository(db.DB),
		cfg.Pagination,
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
		services.NewQueryLogger(slog.Default()),
	)
	return fn(ledger)
}
