package ports

import (
	"context"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserService defines profile use-cases for the authenticated user.
type UserService interface {
	EditProfile(ctx context.Context, userID int64, patch UserPatch) (*domain.User, error)
}
