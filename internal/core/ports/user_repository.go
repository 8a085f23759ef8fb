package ports

import (
	"context"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its generated id.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Update persists the full user record. Returns domain.ErrEmailTaken
	// when the new email collides with another account.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
