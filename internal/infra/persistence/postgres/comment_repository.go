package postgres

import (
	"context"
	"database/sql/driver"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"
	"reelhouse/internal/infra/persistence/model"
	"reelhouse/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type commentRepository struct {
	q *query.Query
}

// NewCommentRepository creates a GORM Gen backed repository.CommentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		q: query.Use(db),
	}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	commentM := fromCommentDomain(comment)
	if err := repo.q.CommentModel.WithContext(ctx).Create(commentM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt
	comment.SetReactions(nil)

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	c := repo.q.CommentModel
	var rows []model.CommentWithAuthor
	err := repo.withAuthor(ctx).
		Where(c.ID.Eq(id)).
		Limit(1).
		Scan(&rows)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comment")
	}

	if len(rows) == 0 {
		return nil, repository.ErrCommentNotFound
	}

	comments, err := repo.attachReactions(ctx, rows)
	if err != nil {
		return nil, err
	}

	return comments[0], nil
}

// ListByMedia returns the comments for a title newest first, each with its author's username.
func (repo *commentRepository) ListByMedia(ctx context.Context, mediaID string) ([]*entity.Comment, error) {
	c := repo.q.CommentModel
	var rows []model.CommentWithAuthor
	err := repo.withAuthor(ctx).
		Where(c.MediaID.Eq(mediaID)).
		Order(c.CreatedAt.Desc(), c.ID.Desc()).
		Scan(&rows)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	return repo.attachReactions(ctx, rows)
}

// Delete removes the comment; its reactions go with it through ON DELETE CASCADE.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	c := repo.q.CommentModel
	result, err := c.WithContext(ctx).Where(c.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// withAuthor selects comment rows joined with the author's username.
func (repo *commentRepository) withAuthor(ctx context.Context) query.ICommentModelDo {
	c, u := &repo.q.CommentModel, &repo.q.UserModel

	return c.WithContext(ctx).
		Select(c.ALL, u.Username).
		Join(u, u.ID.EqCol(c.UserID))
}

func (repo *commentRepository) attachReactions(ctx context.Context, rows []model.CommentWithAuthor) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0, len(rows))
	if len(rows) == 0 {
		return comments, nil
	}

	ids := make([]driver.Valuer, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	r := repo.q.CommentReactionModel
	reactions, err := r.WithContext(ctx).Where(r.CommentID.In(ids...)).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load comment reactions")
	}

	byComment := make(map[uuid.UUID]map[uuid.UUID]entity.ReactionType, len(rows))
	for _, reaction := range reactions {
		if byComment[reaction.CommentID] == nil {
			byComment[reaction.CommentID] = make(map[uuid.UUID]entity.ReactionType)
		}
		byComment[reaction.CommentID][reaction.UserID] = entity.ReactionType(reaction.Kind)
	}

	for i := range rows {
		comment := toCommentDomain(&rows[i].CommentModel)
		comment.Username = rows[i].Username
		comment.SetReactions(byComment[comment.ID])
		comments = append(comments, comment)
	}

	return comments, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		UserID:    data.UserID,
		MediaID:   data.MediaID,
		MediaType: entity.MediaType(data.MediaType),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		MediaID:   data.MediaID,
		MediaType: data.MediaType.String(),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
