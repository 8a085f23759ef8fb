package ports

import (
	"context"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

// AuthService defines the credential use-cases.
type AuthService interface {
	// Signup creates a new account and returns it with a signed access token.
	Signup(ctx context.Context, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
