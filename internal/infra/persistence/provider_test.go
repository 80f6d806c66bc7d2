package persistence

import (
	"log/slog"
	"testing"

	"reelhouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories(t *testing.T) {
	t.Run("memory driver", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}

		repos, err := NewRepositories(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.Default()})
		require.NoError(t, err)
		assert.NotNil(t, repos.Users)
		assert.NotNil(t, repos.Favorites)
		assert.NotNil(t, repos.Comments)
		assert.NotNil(t, repos.Contacts)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}

		_, err := NewRepositories(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.Default()})
		assert.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("postgres without config", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverPostgres}}

		_, err := NewRepositories(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.Default()})
		assert.Error(t, err)
	})

	t.Run("mongo without config", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMongo}}

		_, err := NewRepositories(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: slog.Default()})
		assert.Error(t, err)
	})
}
