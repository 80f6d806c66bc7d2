package mongodb

import (
	"context"
	"time"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository creates a MongoDB backed repository.CommentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{coll: db.Collection(commentsCollection)}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}

	now := time.Now().UTC()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	comment.UpdatedAt = now
	comment.SetReactions(nil)

	doc := commentDocument{
		ID:        comment.ID.String(),
		UserID:    comment.UserID.String(),
		MediaID:   comment.MediaID,
		MediaType: comment.MediaType.String(),
		Content:   comment.Content,
		Likes:     uuidStrings(comment.Likes),
		Dislikes:  uuidStrings(comment.Dislikes),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	comments, err := repo.aggregateWithAuthor(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return nil, err
	}

	if len(comments) == 0 {
		return nil, repository.ErrCommentNotFound
	}

	return comments[0], nil
}

func (repo *commentRepository) ListByMedia(ctx context.Context, mediaID string) ([]*entity.Comment, error) {
	return repo.aggregateWithAuthor(ctx, bson.D{{Key: "media_id", Value: mediaID}})
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}

	if result.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// aggregateWithAuthor matches comments newest first and joins the author's username from users.
func (repo *commentRepository) aggregateWithAuthor(ctx context.Context, match bson.D) ([]*entity.Comment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "username", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$author.username", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "author", Value: 0}}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode comments")
	}

	comments := make([]*entity.Comment, 0, len(docs))
	for i := range docs {
		comments = append(comments, toCommentDomain(&docs[i]))
	}

	return comments, nil
}
