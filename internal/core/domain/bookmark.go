package domain

import (
	"errors"
	"time"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")
var ErrForbidden = errors.New("access forbidden")

// Bookmark is a saved link owned by exactly one user. Every read, update or
// delete must be scoped to the owner before touching the record.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
