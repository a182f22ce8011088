package usecase

import (
	"context"
	"fmt"
	"strings"

	"main/model"

	"github.com/google/uuid"
)

// CategoryStore is the slice of the category repository the service needs.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, userID, name string) (*model.Category, error)
	GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error)
	UpdateCategoryName(ctx context.Context, categoryID, userID, name string) error
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// NoteRefClearer detaches notes from a category being removed.
type NoteRefClearer interface {
	ClearCategoryRefs(ctx context.Context, userID, categoryID string) (int64, error)
}

// CategoriesService manages per-owner category collections. Names are unique
// within one owner; different owners may reuse the same name.
type CategoriesService struct {
	Categories CategoryStore
	Notes      NoteRefClearer
}

func (svc *CategoriesService) CreateCategory(ctx context.Context, userID, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", model.ErrInvalidInput)
	}

	existing, err := svc.Categories.GetCategoryByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, model.ErrDuplicateCategory
	}

	category := &model.Category{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
	}
	if err := svc.Categories.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory returns the owner's category, or model.ErrNotFound when the id
// does not exist or belongs to someone else.
func (svc *CategoriesService) GetCategory(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	category, err := svc.Categories.GetCategory(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, model.ErrNotFound
	}
	return category, nil
}

func (svc *CategoriesService) ListCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	return svc.Categories.GetUserCategories(ctx, userID)
}

// RenameCategory changes a category's name. Renaming to the name it already
// has is a no-op success; renaming onto another category's name is a
// duplicate error.
func (svc *CategoriesService) RenameCategory(ctx context.Context, userID, categoryID, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", model.ErrInvalidInput)
	}

	category, err := svc.Categories.GetCategory(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, model.ErrNotFound
	}

	existing, err := svc.Categories.GetCategoryByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil && existing.ID != categoryID {
		return nil, model.ErrDuplicateCategory
	}

	if err := svc.Categories.UpdateCategoryName(ctx, categoryID, userID, name); err != nil {
		return nil, err
	}

	category.Name = name
	return category, nil
}

// DeleteCategory removes the category and detaches any notes referencing it.
// The notes themselves survive with no category.
func (svc *CategoriesService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	category, err := svc.Categories.GetCategory(ctx, categoryID, userID)
	if err != nil {
		return err
	}
	if category == nil {
		return model.ErrNotFound
	}

	if _, err := svc.Notes.ClearCategoryRefs(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("failed to detach notes from category: %w", err)
	}

	return svc.Categories.DeleteCategory(ctx, categoryID, userID)
}
