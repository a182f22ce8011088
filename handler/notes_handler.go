package handler

import (
	"context"
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// categoryLookup indexes the owner's categories so note responses can embed
// category names without a query per note.
func categoryLookup(ctx context.Context, userID string, categories *usecase.CategoriesService) (func(string) *model.Category, error) {
	list, err := categories.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Category, len(list))
	for _, category := range list {
		byID[category.ID] = category
	}
	return func(categoryID string) *model.Category {
		return byID[categoryID]
	}, nil
}

func noteError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		utils.NotFound(c, "Not found")
	case errors.Is(err, model.ErrInvalidInput):
		utils.BadRequest(c, err.Error())
	default:
		utils.TrackError("notes", op)
		utils.InternalError(c, "Failed to process note")
	}
}

// ListNotesHandler searches the caller's notes. Query parameters search,
// status, and category combine with AND; no parameters lists everything,
// most recently updated first.
func ListNotesHandler(c *gin.Context, notes *usecase.NotesService, categories *usecase.CategoriesService) {
	userID := c.GetString("user_id")

	list, err := notes.ListNotes(c.Request.Context(), userID, usecase.NoteFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		CategoryID: c.Query("category"),
	})
	if err != nil {
		noteError(c, err, "list_failed")
		return
	}

	lookup, err := categoryLookup(c.Request.Context(), userID, categories)
	if err != nil {
		utils.TrackError("notes", "category_lookup")
		utils.InternalError(c, "Failed to load notes")
		return
	}

	utils.Success(c, gin.H{"notes": dto.ToNoteResponses(list, lookup)})
}

func GetNoteHandler(c *gin.Context, notes *usecase.NotesService, categories *usecase.CategoriesService) {
	userID := c.GetString("user_id")

	note, err := notes.GetNote(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		noteError(c, err, "get_failed")
		return
	}

	lookup, err := categoryLookup(c.Request.Context(), userID, categories)
	if err != nil {
		utils.TrackError("notes", "category_lookup")
		utils.InternalError(c, "Failed to load note")
		return
	}

	utils.Success(c, gin.H{"note": dto.ToNoteResponse(note, lookup)})
}

func CreateNoteHandler(c *gin.Context, notes *usecase.NotesService, categories *usecase.CategoriesService) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title and content are required")
		return
	}

	userID := c.GetString("user_id")
	note, err := notes.CreateNote(c.Request.Context(), userID, usecase.NoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Status:     req.Status,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		noteError(c, err, "create_failed")
		return
	}

	lookup, err := categoryLookup(c.Request.Context(), userID, categories)
	if err != nil {
		utils.TrackError("notes", "category_lookup")
		utils.InternalError(c, "Failed to load note")
		return
	}

	utils.Created(c, "Note created", gin.H{"note": dto.ToNoteResponse(note, lookup)})
}

func UpdateNoteHandler(c *gin.Context, notes *usecase.NotesService, categories *usecase.CategoriesService) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title and content are required")
		return
	}

	userID := c.GetString("user_id")
	note, err := notes.UpdateNote(c.Request.Context(), userID, c.Param("id"), usecase.NoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Status:     req.Status,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		noteError(c, err, "update_failed")
		return
	}

	lookup, err := categoryLookup(c.Request.Context(), userID, categories)
	if err != nil {
		utils.TrackError("notes", "category_lookup")
		utils.InternalError(c, "Failed to load note")
		return
	}

	utils.Success(c, gin.H{"note": dto.ToNoteResponse(note, lookup)})
}

func DeleteNoteHandler(c *gin.Context, notes *usecase.NotesService) {
	if err := notes.DeleteNote(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		noteError(c, err, "delete_failed")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted"})
}

// NoteStatusesHandler lists the fixed status vocabulary for clients.
func NoteStatusesHandler(c *gin.Context, notes *usecase.NotesService) {
	utils.Success(c, gin.H{"statuses": notes.Statuses()})
}
