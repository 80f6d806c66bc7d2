package postgres

import (
	"context"
	"testing"
	"time"

	"reelhouse/internal/domain/entity"
	"reelhouse/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"id", "user_id", "media_id", "media_type", "content", "created_at", "updated_at", "username"}

func TestCommentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec(`INSERT INTO "comments"`).WillReturnResult(sqlmock.NewResult(0, 1))

	comment := &entity.Comment{UserID: uuid.New(), MediaID: "603", MediaType: entity.MediaTypeMovie, Content: "Great"}
	require.NoError(t, repo.Create(context.Background(), comment))
	assert.NotEqual(t, uuid.Nil, comment.ID)
	assert.NotNil(t, comment.Likes)
	assert.NotNil(t, comment.Dislikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByMedia(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	newer, older := uuid.New(), uuid.New()
	author := uuid.New()
	fan, critic := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT "comments"\.\*,"users"."username" FROM "comments" (INNER )?JOIN "users" ON "users"."id" = "comments"."user_id" WHERE "comments"."media_id" = \$1 ORDER BY "comments"."created_at" DESC,\s*"comments"."id" DESC`).
		WithArgs("603").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(newer.String(), author.String(), "603", "movie", "second", now, now, "alice").
			AddRow(older.String(), author.String(), "603", "movie", "first", now.Add(-time.Hour), now.Add(-time.Hour), "alice"))
	mock.ExpectQuery(`SELECT \* FROM "comment_reactions" WHERE "comment_reactions"."comment_id" IN`).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "user_id", "kind", "created_at"}).
			AddRow(older.String(), fan.String(), "like", now).
			AddRow(older.String(), critic.String(), "dislike", now))

	comments, err := repo.ListByMedia(context.Background(), "603")
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, newer, comments[0].ID)
	assert.Equal(t, "alice", comments[0].Username)
	assert.Empty(t, comments[0].Likes)

	assert.Equal(t, []uuid.UUID{fan}, comments[1].Likes)
	assert.Equal(t, []uuid.UUID{critic}, comments[1].Dislikes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByMediaEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(`FROM "comments" (INNER )?JOIN "users"`).WillReturnRows(sqlmock.NewRows(commentColumns))

	comments, err := repo.ListByMedia(context.Background(), "603")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(`FROM "comments" (INNER )?JOIN "users" ON "users"."id" = "comments"."user_id" WHERE "comments"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(commentColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrCommentNotFound))
}

func TestCommentRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectExec(`DELETE FROM "comments" WHERE "comments"."id" = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectExec(`DELETE FROM "comments"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), uuid.New())
		assert.True(t, errors.Is(err, repository.ErrCommentNotFound))
	})
}
