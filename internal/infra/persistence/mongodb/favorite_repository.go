package mongodb

import (
	"context"
	"time"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type favoriteRepository struct {
	coll *mongo.Collection
}

// NewFavoriteRepository creates a MongoDB backed repository.FavoriteRepository.
func NewFavoriteRepository(db *mongo.Database) repository.FavoriteRepository {
	return &favoriteRepository{coll: db.Collection(favoritesCollection)}
}

// Create inserts the favorite; favorites_user_media_key rejects a second (user_id, media_id).
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now().UTC()
	}

	doc := favoriteDocument{
		ID:         favorite.ID.String(),
		UserID:     favorite.UserID.String(),
		MediaID:    favorite.MediaID,
		MediaType:  favorite.MediaType.String(),
		Title:      favorite.Title,
		PosterPath: favorite.PosterPath,
		CreatedAt:  favorite.CreatedAt,
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return errors.WithStack(domainerrors.ErrFavoriteAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	return nil
}

func (repo *favoriteRepository) FindByUserAndMedia(ctx context.Context, userID uuid.UUID, mediaID string) (*entity.Favorite, error) {
	var doc favoriteDocument
	err := repo.coll.FindOne(ctx, ownerFilter(userID, mediaID)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find favorite")
	}

	return toFavoriteDomain(&doc), nil
}

func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := repo.coll.Find(ctx, bson.D{{Key: "user_id", Value: userID.String()}}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorites")
	}

	var docs []favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(docs))
	for i := range docs {
		favorites = append(favorites, toFavoriteDomain(&docs[i]))
	}

	return favorites, nil
}

func (repo *favoriteRepository) DeleteByUserAndMedia(ctx context.Context, userID uuid.UUID, mediaID string) error {
	result, err := repo.coll.DeleteOne(ctx, ownerFilter(userID, mediaID))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
	}

	if result.DeletedCount == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func ownerFilter(userID uuid.UUID, mediaID string) bson.D {
	return bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "media_id", Value: mediaID},
	}
}
