package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
	"github.com/NSVEGUR/bookmarks-api/internal/core/ports"
)

// UserService implements profile edits for the authenticated user.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// EditProfile applies the non-nil fields of patch to the user's profile and
// persists the result. Untouched fields keep their prior values.
func (s *UserService) EditProfile(ctx context.Context, userID int64, patch ports.UserPatch) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Msg("profile updated")
	return updated, nil
}
