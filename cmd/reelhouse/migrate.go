package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"reelhouse/config"
	"reelhouse/internal/errors"
	logs "reelhouse/internal/infra/log"
	"reelhouse/internal/infra/persistence/postgres"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
				results, err := m.Up(ctx)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations")

					return nil
				}
				for _, result := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "OK   %s (%s)\n", result.Source.Path, result.Duration.Round(time.Millisecond))
				}

				return nil
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
				result, err := m.Down(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %s\n", result.Source.Path)

				return nil
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(ctx context.Context, m *postgres.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}

				return writeMigrationStatus(cmd.OutOrStdout(), statuses)
			})
		},
	})

	return migrateCmd
}

// withMigrator opens a short-lived pool for a single migrate subcommand.
func withMigrator(ctx context.Context, fn func(context.Context, *postgres.Migrator) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return errors.Errorf("migrations only apply to the postgres storage driver, got %q", cfg.Storage.Driver)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Warn("Failed to close PostgreSQL pool", slog.Any("error", closeErr))
		}
	}()

	migrator, err := postgres.NewMigrator(db)
	if err != nil {
		return err
	}

	return fn(ctx, migrator)
}

func writeMigrationStatus(w io.Writer, statuses []*goose.MigrationStatus) error {
	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		appliedAt := "-"
		if status.State == goose.StateApplied && !status.AppliedAt.IsZero() {
			appliedAt = status.AppliedAt.UTC().Format(time.RFC3339)
		}

		rows = append(rows, []string{
			strconv.FormatInt(status.Source.Version, 10),
			status.Source.Path,
			string(status.State),
			appliedAt,
		})
	}

	_, err := fmt.Fprintln(w, renderTable(
		[]string{"Version", "Migration", "State", "Applied At"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))

	return errors.WithStack(err)
}
