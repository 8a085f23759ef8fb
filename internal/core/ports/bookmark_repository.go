package ports

import (
	"context"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

// BookmarkRepository defines persistence operations for bookmarks.
type BookmarkRepository interface {
	// Create inserts a new bookmark and returns it with its generated id.
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	// ListByOwner returns all bookmarks owned by userID, oldest first.
	ListByOwner(ctx context.Context, userID int64) ([]*domain.Bookmark, error)
	// FindByID retrieves a bookmark by id regardless of owner.
	// Ownership is enforced by the service layer.
	FindByID(ctx context.Context, id int64) (*domain.Bookmark, error)
	Update(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}
