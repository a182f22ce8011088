package model

import (
	"time"
)

type NoteStatus string

const (
	StatusNew  NoteStatus = "new"
	StatusTodo NoteStatus = "todo"
	StatusDone NoteStatus = "done"
)

// NoteStatuses is the fixed set of valid note statuses, in display order.
var NoteStatuses = []NoteStatus{StatusNew, StatusTodo, StatusDone}

func IsValidStatus(s NoteStatus) bool {
	for _, valid := range NoteStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

type Note struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	UserID     string     `bson:"user_id" json:"user_id"`
	CategoryID string     `bson:"category_id,omitempty" json:"category_id,omitempty"` // Must belong to the same owner when set
	Title      string     `bson:"title" json:"title" binding:"required"`
	Content    string     `bson:"content" json:"content" binding:"required"`
	Status     NoteStatus `bson:"status" json:"status"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}
