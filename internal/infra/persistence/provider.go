// Package persistence selects the storage backend named by storage.driver and exposes
// its repositories to the fx graph.
package persistence

import (
	"log/slog"

	"reelhouse/config"
	"reelhouse/internal/domain/repository"
	"reelhouse/internal/infra/persistence/memory"
	"reelhouse/internal/infra/persistence/mongodb"
	"reelhouse/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repository provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories backed by a single store.
type Repositories struct {
	fx.Out

	Users     repository.UserRepository
	Favorites repository.FavoriteRepository
	Comments  repository.CommentRepository
	Contacts  repository.ContactRepository
}

// NewRepositories creates the repositories for the configured storage driver.
func NewRepositories(params Params) (Repositories, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		logger.Info("Using PostgreSQL storage")

		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: cfg, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}

		if err := postgres.RegisterAutoMigrate(postgres.AutoMigrateParams{
			Lifecycle: params.Lc,
			Config:    cfg,
			Logger:    logger,
			DB:        db,
		}); err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:     postgres.NewUserRepository(db),
			Favorites: postgres.NewFavoriteRepository(db),
			Comments:  postgres.NewCommentRepository(db),
			Contacts:  postgres.NewContactRepository(db),
		}, nil

	case config.StorageDriverMongo:
		logger.Info("Using MongoDB storage")

		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lc, Config: cfg, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:     mongodb.NewUserRepository(db),
			Favorites: mongodb.NewFavoriteRepository(db),
			Comments:  mongodb.NewCommentRepository(db),
			Contacts:  mongodb.NewContactRepository(db),
		}, nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		return NewMemoryRepositories(memory.NewStore()), nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// NewMemoryRepositories wires every repository to the same in-memory store.
func NewMemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Users:     memory.NewUserRepository(store),
		Favorites: memory.NewFavoriteRepository(store),
		Comments:  memory.NewCommentRepository(store),
		Contacts:  memory.NewContactRepository(store),
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
