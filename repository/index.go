package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes that back the uniqueness invariants and
// the hot query paths. Safe to run on every startup.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		// Hard uniqueness constraint on email, enforced at write time.
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("unique_email").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index").
				SetUnique(true),
		},
		// Confirmation lookups happen by exact token; sparse since the
		// field is cleared after confirmation.
		{
			Keys: bson.D{{Key: "confirmation_token", Value: 1}},
			Options: options.Index().
				SetName("confirmation_token_index").
				SetSparse(true),
		},
	}

	categoryIndexes := []mongo.IndexModel{
		// (owner, name) pair is unique; names may repeat across owners.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().
				SetName("unique_user_category_name").
				SetUnique(true),
		},
	}

	noteIndexes := []mongo.IndexModel{
		// Listing order: most recently updated first.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_notes_updated"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("user_notes_status"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category_id", Value: 1},
			},
			Options: options.Index().
				SetName("user_notes_category"),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().
				SetName("session_id_index").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_sessions"),
		},
		// Let MongoDB reap expired session rows.
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetName("session_expiry_ttl").
				SetExpireAfterSeconds(0),
		},
	}

	for _, c := range []struct {
		name    string
		indexes []mongo.IndexModel
	}{
		{"users", userIndexes},
		{"categories", categoryIndexes},
		{"notes", noteIndexes},
		{"sessions", sessionIndexes},
	} {
		if _, err := db.Collection(c.name).Indexes().CreateMany(ctx, c.indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", c.name, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
