package database

import (
	"context"
	"log"

	"collabase/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Run at server
// startup; CreateOne is a no-op for indexes that already exist.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "currentTeam", Value: 1}}, nil)

	// Teams indexes
	createIndex(ctx, db, "teams", bson.D{{Key: "creatorId", Value: 1}}, nil)
	createIndex(ctx, db, "teams", bson.D{
		{Key: "state", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)

	// Join requests indexes. The partial unique index is the backstop for the
	// one-pending-request-per-pair rule.
	createIndex(ctx, db, "join_requests", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "userId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
		PartialFilterExpression: bson.D{
			{Key: "status", Value: models.RequestStatusPending},
		},
	})
	createIndex(ctx, db, "join_requests", bson.D{
		{Key: "userId", Value: 1},
		{Key: "status", Value: 1},
	}, nil)
	createIndex(ctx, db, "join_requests", bson.D{
		{Key: "teamId", Value: 1},
		{Key: "status", Value: 1},
		{Key: "createdAt", Value: -1},
	}, nil)

	// Team invites indexes
	createIndex(ctx, db, "team_invites", bson.D{
		{Key: "invitedUserId", Value: 1},
		{Key: "status", Value: 1},
	}, nil)
	createIndex(ctx, db, "team_invites", bson.D{{Key: "teamId", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
