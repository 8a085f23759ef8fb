package ports

import (
	"context"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

// CreateBookmarkInput carries the data needed to create a bookmark.
type CreateBookmarkInput struct {
	Title       string
	Link        string
	Description string
}

// BookmarkPatch carries a partial bookmark update. Nil fields are left untouched.
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

// BookmarkService defines bookmark use-cases. Every operation is scoped to
// the owning user: a bookmark belonging to someone else is never returned,
// updated or deleted.
type BookmarkService interface {
	Create(ctx context.Context, userID int64, input CreateBookmarkInput) (*domain.Bookmark, error)
	ListAll(ctx context.Context, userID int64) ([]*domain.Bookmark, error)
	// GetOne returns domain.ErrBookmarkNotFound both when the bookmark is
	// absent and when it is owned by a different user.
	GetOne(ctx context.Context, userID, bookmarkID int64) (*domain.Bookmark, error)
	// Update and Delete return domain.ErrForbidden when the bookmark exists
	// but is owned by a different user, domain.ErrBookmarkNotFound when absent.
	Update(ctx context.Context, userID, bookmarkID int64, patch BookmarkPatch) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID int64) error
}
