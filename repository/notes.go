package repository

import (
	"context"
	"errors"
	"os"
	"regexp"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// SearchOptions narrows a note listing. Zero-valued fields are ignored;
// UserID is mandatory.
type SearchOptions struct {
	UserID     string
	Search     string           // Substring match against title OR content
	Status     model.NoteStatus // Exact match
	CategoryID string           // Exact match
}

// CreateNote inserts a new note with fresh timestamps.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}

	utils.TrackNoteOperation("create")
	return nil
}

// GetNote fetches a note scoped to its owner. Missing and not-owned rows are
// both (nil, nil).
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}

	return &note, nil
}

// FindNotes runs the composed owner/search/status/category filter, most
// recently updated first. No matches yields an empty slice.
func (r *NotesRepo) FindNotes(ctx context.Context, opts SearchOptions) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	if opts.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	filter := bson.M{"user_id": opts.UserID}

	if opts.Search != "" {
		// Substring semantics; QuoteMeta keeps user input out of the
		// regex grammar. Case handling follows the store's collation.
		pattern := regexp.QuoteMeta(opts.Search)
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"content": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	if opts.Status != "" {
		filter["status"] = opts.Status
	}

	if opts.CategoryID != "" {
		filter["category_id"] = opts.CategoryID
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("search")
	return notes, nil
}

// UpdateNote rewrites the mutable fields of an owner's note and refreshes
// updated_at. CreatedAt is never touched.
func (r *NotesRepo) UpdateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	note.UpdatedAt = time.Now()

	filter := bson.M{"_id": note.ID, "user_id": note.UserID}
	update := bson.M{
		"$set": bson.M{
			"title":       note.Title,
			"content":     note.Content,
			"status":      note.Status,
			"category_id": note.CategoryID,
			"updated_at":  note.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}

	utils.TrackNoteOperation("update")
	return nil
}

// DeleteNote removes an owner's note.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return err
	}

	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}

	utils.TrackNoteOperation("delete")
	return nil
}

// ClearCategoryRefs detaches all of an owner's notes from a deleted
// category, leaving them with no category instead of a dangling reference.
func (r *NotesRepo) ClearCategoryRefs(ctx context.Context, userID, categoryID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID, "category_id": categoryID}
	update := bson.M{
		"$unset": bson.M{"category_id": ""},
		"$set":   bson.M{"updated_at": time.Now()},
	}

	result, err := r.MongoCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "category_unlink_failed")
		return 0, err
	}

	return result.ModifiedCount, nil
}
