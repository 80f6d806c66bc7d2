package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"reelhouse/config"
	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestReportPoolWait(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	prev := sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond}

	reportPoolWait(context.Background(), log, prev, prev)
	assert.Zero(t, buf.Len())

	reportPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 3, WaitDuration: 101 * time.Millisecond})
	assert.Contains(t, buf.String(), "Postgres pool wait detected")
	assert.Contains(t, buf.String(), "waitCountDelta=2")

	buf.Reset()
	reportPoolWait(context.Background(), log, prev, sql.DBStats{WaitCount: 2, WaitDuration: 2 * time.Millisecond})
	assert.Contains(t, buf.String(), "Postgres pool wait observed")
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	gormLogger := newGormSlogLogger(log, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len())

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	gormLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Zero(t, buf.Len())
}

func TestGormSlogLogger_OmitsBoundValues(t *testing.T) {
	const hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	for _, debug := range []bool{false, true} {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		db, mock := newMockDBWithLogger(t, newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg))
		repo := NewUserRepository(db)

		mock.ExpectExec(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "users_email_key"`,
			Detail:         "Key (email)=(alice@example.com) already exists.",
			ConstraintName: "users_email_key",
		})

		err := repo.Create(context.Background(), &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: hash})
		require.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

		logged := buf.String()
		assert.Contains(t, logged, "GORM query failed")
		assert.Contains(t, logged, "INSERT INTO")
		assert.NotContains(t, logged, hash)
		assert.NotContains(t, logged, "alice@example.com")
	}
}

func TestOpen_RequiresConfig(t *testing.T) {
	_, err := Open(&config.Config{}, slog.Default())
	assert.Error(t, err)
}
