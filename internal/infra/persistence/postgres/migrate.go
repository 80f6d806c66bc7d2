package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"reelhouse/config"
	"reelhouse/internal/domain/lifecycle"
	"reelhouse/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// MigrationsFS returns the embedded SQL migrations rooted at the migrations directory.
func MigrationsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return sub, nil
}

// Migrator applies and inspects schema versions with goose.
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator builds a goose provider over the pool behind db.
func NewMigrator(db *gorm.DB) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	fsys, err := MigrationsFS()
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration provider")
	}

	return &Migrator{provider: provider}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return results, errors.Wrap(err, "failed to apply migrations")
	}

	return results, nil
}

// Down rolls back the most recently applied migration.
func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return result, errors.Wrap(err, "failed to roll back migration")
	}

	return result, nil
}

// Status reports every known migration and whether it has been applied.
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migration status")
	}

	return statuses, nil
}

// AutoMigrateParams defines the dependencies of RegisterAutoMigrate.
type AutoMigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterAutoMigrate applies pending migrations on start when migrations.auto is set.
func RegisterAutoMigrate(params AutoMigrateParams) error {
	if params.Config.Migrations == nil || !params.Config.Migrations.Auto {
		return nil
	}

	migrator, err := NewMigrator(params.DB)
	if err != nil {
		return err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			results, err := migrator.Up(ctx)
			if err != nil {
				return err
			}

			for _, result := range results {
				params.Logger.Info("Applied migration",
					slog.Int64("version", result.Source.Version),
					slog.String("path", result.Source.Path),
					slog.Duration("duration", result.Duration),
				)
			}

			return nil
		},
	})

	return nil
}
