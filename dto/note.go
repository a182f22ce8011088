package dto

import (
	"time"

	"main/model"
)

// NoteRequest carries a note create or update body. Status and CategoryID
// are pointers so an omitted key is distinguishable from an explicit value;
// on update, omitted keys leave the stored fields untouched.
type NoteRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	Status     *string `json:"status"`
	CategoryID *string `json:"category_id"`
}

type NoteResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Status    string            `json:"status"`
	Category  *CategoryResponse `json:"category"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// ToNoteResponse renders a note with its category resolved through lookup.
// lookup maps category id to category and may return nil for detached notes.
func ToNoteResponse(note *model.Note, lookup func(categoryID string) *model.Category) NoteResponse {
	resp := NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Status:    string(note.Status),
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
	if note.CategoryID != "" && lookup != nil {
		if category := lookup(note.CategoryID); category != nil {
			cr := ToCategoryResponse(category)
			resp.Category = &cr
		}
	}
	return resp
}

func ToNoteResponses(notes []*model.Note, lookup func(categoryID string) *model.Category) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, ToNoteResponse(note, lookup))
	}
	return out
}
