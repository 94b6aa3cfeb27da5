package model

import (
	"time"
)

type Todo struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Text      string    `db:"text" json:"text"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// Attachments, loaded separately (not a database column)
	Files []*TodoFile `db:"-" json:"files"`
}

// TodoFile is a file attachment on a todo. These are object references
// (name, type, size, URL) rather than durably uploaded blobs.
type TodoFile struct {
	ID        string    `db:"id" json:"id"`
	TodoID    string    `db:"todo_id" json:"todoId"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type"`
	Size      int64     `db:"size" json:"size"`
	URL       string    `db:"url" json:"url"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
