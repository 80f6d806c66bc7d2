// Package mongodb implements the persistence layer on MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"reelhouse/config"
	"reelhouse/internal/domain/lifecycle"
	"reelhouse/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const defaultDatabase = "reelhouse"

// Collection names
const (
	usersCollection     = "users"
	favoritesCollection = "favorites"
	commentsCollection  = "comments"
	contactsCollection  = "contact_messages"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client, and on start pings the server and ensures indexes.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo config is missing")
	}

	client, err := mongo.Connect(context.Background(),
		options.Client().
			ApplyURI(cfg.URI).
			SetConnectTimeout(cfg.ConnectTimeout).
			SetServerSelectionTimeout(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	name := cfg.Database
	if name == "" {
		name = defaultDatabase
	}
	db := client.Database(name)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", name))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// Uniqueness of username, email and (user_id, media_id) is enforced here.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName(usersUsernameIndex).SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(usersEmailIndex).SetUnique(true)},
		},
		favoritesCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "media_id", Value: 1}},
				Options: options.Index().SetName(favoritesUserMediaIndex).SetUnique(true),
			},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("favorites_user_created_idx")},
		},
		commentsCollection: {
			{Keys: bson.D{{Key: "media_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("comments_media_created_idx")},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
