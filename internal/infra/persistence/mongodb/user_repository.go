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

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a MongoDB backed repository.UserRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// FindByID retrieves the user without the password hash.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "password_hash", Value: 0}})

	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, opts)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: entity.NormalizeEmail(email)}})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D, opts ...*options.FindOneOptions) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&doc), nil
}

func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, bson.D{{Key: "username", Value: username}})
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, bson.D{{Key: "email", Value: entity.NormalizeEmail(email)}})
}

func (repo *userRepository) exists(ctx context.Context, filter bson.D) (bool, error) {
	count, err := repo.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user existence")
	}

	return count > 0, nil
}

// Create inserts the user; the unique indexes on username and email reject duplicates.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = entity.NormalizeEmail(user.Email)

	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	doc := userDocument{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			if duplicateIndex(err) == usersUsernameIndex {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}

			return errors.WithStack(domainerrors.ErrEmailTaken)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}
