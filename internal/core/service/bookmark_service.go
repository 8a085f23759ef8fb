package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
	"github.com/NSVEGUR/bookmarks-api/internal/core/ports"
)

// BookmarkService implements owner-scoped bookmark CRUD.
type BookmarkService struct {
	repo   ports.BookmarkRepository
	logger zerolog.Logger
}

func NewBookmarkService(repo ports.BookmarkRepository, logger zerolog.Logger) *BookmarkService {
	return &BookmarkService{repo: repo, logger: logger}
}

func (s *BookmarkService) Create(ctx context.Context, userID int64, input ports.CreateBookmarkInput) (*domain.Bookmark, error) {
	now := time.Now().UTC()
	bookmark := &domain.Bookmark{
		UserID:      userID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, bookmark)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create bookmark")
		return nil, err
	}

	s.logger.Info().Int64("bookmark_id", created.ID).Int64("user_id", userID).Msg("bookmark created")
	return created, nil
}

func (s *BookmarkService) ListAll(ctx context.Context, userID int64) ([]*domain.Bookmark, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// GetOne returns ErrBookmarkNotFound both for an absent bookmark and for one
// owned by another user, so reads never reveal foreign ids.
func (s *BookmarkService) GetOne(ctx context.Context, userID, bookmarkID int64) (*domain.Bookmark, error) {
	bookmark, err := s.fetchOwned(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, err
	}
	return bookmark, nil
}

func (s *BookmarkService) Update(ctx context.Context, userID, bookmarkID int64, patch ports.BookmarkPatch) (*domain.Bookmark, error) {
	bookmark, err := s.fetchOwned(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		bookmark.Title = *patch.Title
	}
	if patch.Description != nil {
		bookmark.Description = *patch.Description
	}
	if patch.Link != nil {
		bookmark.Link = *patch.Link
	}
	bookmark.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, bookmark)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("bookmark_id", bookmarkID).Int64("user_id", userID).Msg("bookmark updated")
	return updated, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, bookmarkID int64) error {
	if _, err := s.fetchOwned(ctx, userID, bookmarkID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookmarkID); err != nil {
		return err
	}

	s.logger.Info().Int64("bookmark_id", bookmarkID).Int64("user_id", userID).Msg("bookmark deleted")
	return nil
}

// fetchOwned is the single ownership check all scoped operations go through:
// absent → ErrBookmarkNotFound, owned by someone else → ErrForbidden.
func (s *BookmarkService) fetchOwned(ctx context.Context, userID, bookmarkID int64) (*domain.Bookmark, error) {
	bookmark, err := s.repo.FindByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return bookmark, nil
}
