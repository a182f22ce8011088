package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

// NoteStore is the slice of the notes repository the service needs.
type NoteStore interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	FindNotes(ctx context.Context, opts repository.SearchOptions) ([]*model.Note, error)
	UpdateNote(ctx context.Context, note *model.Note) error
	DeleteNote(ctx context.Context, noteID, userID string) error
}

// NoteInput is the caller-supplied portion of a note. Status and CategoryID
// are pointers so an absent field can be told apart from an explicit value:
// on update, nil leaves the stored value alone, while an explicit empty
// CategoryID detaches the note. A non-empty CategoryID must name a category
// owned by the same user.
type NoteInput struct {
	Title      string
	Content    string
	Status     *string
	CategoryID *string
}

// NoteFilter narrows ListNotes. All fields are optional and combine with AND;
// Search matches title or content case-insensitively.
type NoteFilter struct {
	Search     string
	Status     string
	CategoryID string
}

// NotesService manages per-owner notes. Every operation takes the owner's id
// and never returns another owner's data.
type NotesService struct {
	Notes      NoteStore
	Categories CategoryStore
}

func (svc *NotesService) validate(ctx context.Context, userID string, in *NoteInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	if in.Title == "" {
		return fmt.Errorf("%w: title is required", model.ErrInvalidInput)
	}
	if in.Content == "" {
		return fmt.Errorf("%w: content is required", model.ErrInvalidInput)
	}

	if in.Status != nil && *in.Status != "" && !model.IsValidStatus(model.NoteStatus(*in.Status)) {
		return fmt.Errorf("%w: invalid status %q", model.ErrInvalidInput, *in.Status)
	}

	if in.CategoryID != nil && *in.CategoryID != "" {
		category, err := svc.Categories.GetCategory(ctx, *in.CategoryID, userID)
		if err != nil {
			return err
		}
		if category == nil {
			return fmt.Errorf("%w: category not found", model.ErrNotFound)
		}
	}
	return nil
}

func (svc *NotesService) CreateNote(ctx context.Context, userID string, in NoteInput) (*model.Note, error) {
	if err := svc.validate(ctx, userID, &in); err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   in.Title,
		Content: in.Content,
		Status:  model.StatusNew,
	}
	if in.Status != nil && *in.Status != "" {
		note.Status = model.NoteStatus(*in.Status)
	}
	if in.CategoryID != nil {
		note.CategoryID = *in.CategoryID
	}
	if err := svc.Notes.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// GetNote returns the owner's note, or model.ErrNotFound when the id does
// not exist or belongs to someone else.
func (svc *NotesService) GetNote(ctx context.Context, userID, noteID string) (*model.Note, error) {
	note, err := svc.Notes.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, model.ErrNotFound
	}
	return note, nil
}

// ListNotes returns the owner's notes matching the filter, most recently
// updated first. A status filter outside the known set is rejected rather
// than silently matching nothing.
func (svc *NotesService) ListNotes(ctx context.Context, userID string, filter NoteFilter) ([]*model.Note, error) {
	if filter.Status != "" && !model.IsValidStatus(model.NoteStatus(filter.Status)) {
		return nil, fmt.Errorf("%w: invalid status %q", model.ErrInvalidInput, filter.Status)
	}

	return svc.Notes.FindNotes(ctx, repository.SearchOptions{
		UserID:     userID,
		Search:     strings.TrimSpace(filter.Search),
		Status:     model.NoteStatus(filter.Status),
		CategoryID: filter.CategoryID,
	})
}

// UpdateNote rewrites the owner's note. Title and content are always
// replaced; status and category keep their stored values when the caller
// leaves them out.
func (svc *NotesService) UpdateNote(ctx context.Context, userID, noteID string, in NoteInput) (*model.Note, error) {
	note, err := svc.Notes.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, model.ErrNotFound
	}

	if err := svc.validate(ctx, userID, &in); err != nil {
		return nil, err
	}

	note.Title = in.Title
	note.Content = in.Content
	if in.Status != nil && *in.Status != "" {
		note.Status = model.NoteStatus(*in.Status)
	}
	if in.CategoryID != nil {
		note.CategoryID = *in.CategoryID
	}
	note.UpdatedAt = time.Now()

	if err := svc.Notes.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (svc *NotesService) DeleteNote(ctx context.Context, userID, noteID string) error {
	note, err := svc.Notes.GetNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if note == nil {
		return model.ErrNotFound
	}

	return svc.Notes.DeleteNote(ctx, noteID, userID)
}

// Statuses returns the fixed set of note statuses in display order.
func (svc *NotesService) Statuses() []model.NoteStatus {
	return model.NoteStatuses
}
