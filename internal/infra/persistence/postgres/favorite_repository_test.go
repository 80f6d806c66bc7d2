package postgres

import (
	"context"
	"testing"
	"time"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectExec(`INSERT INTO "favorites"`).WillReturnResult(sqlmock.NewResult(0, 1))

	favorite := &entity.Favorite{UserID: uuid.New(), MediaID: "603", MediaType: entity.MediaTypeMovie, Title: "The Matrix"}
	require.NoError(t, repo.Create(context.Background(), favorite))
	assert.NotEqual(t, uuid.Nil, favorite.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectExec(`INSERT INTO "favorites"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "favorites_user_media_key"})

	err := repo.Create(context.Background(), &entity.Favorite{UserID: uuid.New(), MediaID: "603", MediaType: entity.MediaTypeMovie})
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteAlreadyExists))
}

func TestFavoriteRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	userID := uuid.New()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "media_id", "media_type", "title", "poster_path", "created_at"}).
		AddRow(uuid.NewString(), userID.String(), "603", "movie", "The Matrix", "/m.jpg", first).
		AddRow(uuid.NewString(), userID.String(), "1399", "tv", "Game of Thrones", "", first.Add(time.Minute))
	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE "favorites"."user_id" = \$1 ORDER BY "favorites"."created_at",\s*"favorites"."id"`).
		WithArgs(userID.String()).
		WillReturnRows(rows)

	favorites, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "603", favorites[0].MediaID)
	assert.Equal(t, entity.MediaTypeTV, favorites[1].MediaType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_ListByUserEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "favorites"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	favorites, err := repo.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestFavoriteRepository_FindByUserAndMediaNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE "favorites"."user_id" = \$1 AND "favorites"."media_id" = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUserAndMedia(context.Background(), uuid.New(), "603")
	assert.True(t, errors.Is(err, repository.ErrFavoriteNotFound))
}

func TestFavoriteRepository_DeleteByUserAndMedia(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFavoriteRepository(db)

		mock.ExpectExec(`DELETE FROM "favorites" WHERE "favorites"."user_id" = \$1 AND "favorites"."media_id" = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteByUserAndMedia(context.Background(), uuid.New(), "603"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFavoriteRepository(db)

		mock.ExpectExec(`DELETE FROM "favorites"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteByUserAndMedia(context.Background(), uuid.New(), "603")
		assert.True(t, errors.Is(err, repository.ErrFavoriteNotFound))
	})
}
