package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoryRepo(client *mongo.Client) *CategoryRepo {
	return &CategoryRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("categories"),
	}
}

// CreateCategory inserts a category. The (user_id, name) unique index backs
// the per-owner name constraint; duplicates surface as
// model.ErrDuplicateCategory.
func (r *CategoryRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.UserID == "" {
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrDuplicateCategory
		}
		utils.TrackError("database", "category_creation_failed")
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetCategory fetches a category scoped to its owner. A missing row and a
// row owned by someone else are both (nil, nil).
func (r *CategoryRepo) GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "category_lookup_error")
		return nil, err
	}

	return &category, nil
}

// GetCategoryByName looks up an owner's category by exact name.
// Returns (nil, nil) when absent.
func (r *CategoryRepo) GetCategoryByName(ctx context.Context, userID, name string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"user_id": userID, "name": name}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "category_lookup_error")
		return nil, err
	}

	return &category, nil
}

// GetUserCategories lists all of an owner's categories, sorted by name.
func (r *CategoryRepo) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []*model.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategoryName renames an owner's category. Missing or foreign rows
// surface as model.ErrNotFound; name collisions within the owner as
// model.ErrDuplicateCategory.
func (r *CategoryRepo) UpdateCategoryName(ctx context.Context, categoryID, userID, name string) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": categoryID, "user_id": userID}
	update := bson.M{"$set": bson.M{"name": name}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrDuplicateCategory
		}
		utils.TrackError("database", "category_update_failed")
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

// DeleteCategory removes an owner's category. The caller is responsible for
// clearing note references afterwards.
func (r *CategoryRepo) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}
