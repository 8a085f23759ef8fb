package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NSVEGUR/bookmarks-api/internal/api/metrics"
	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
	"github.com/NSVEGUR/bookmarks-api/internal/core/ports"
)

const userCacheTTL = time.Minute

// cachedUser is the cache-side encoding of a user. domain.User hides the
// password hash from JSON, so a dedicated doc type carries it here.
type cachedUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCache fronts user-by-id lookups with a short-lived Redis cache. The
// auth middleware resolves the token subject on every protected request, so
// hits here skip a MongoDB round trip.
// Key format: user:<id>
type UserCache struct {
	client *redis.Client
	users  ports.UserRepository
}

// NewUserCache wraps users with a Redis cache backed by client.
func NewUserCache(client *redis.Client, users ports.UserRepository) *UserCache {
	return &UserCache{client: client, users: users}
}

// FindByID returns the cached user when present, falling back to the
// underlying repository and populating the cache on a miss. Cache errors are
// swallowed: the repository stays the source of truth.
func (c *UserCache) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	key := c.key(id)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var doc cachedUser
		if err := json.Unmarshal(raw, &doc); err == nil {
			metrics.AuthCacheTotal.WithLabelValues("hit").Inc()
			return fromCached(&doc), nil
		}
	}
	metrics.AuthCacheTotal.WithLabelValues("miss").Inc()

	user, err := c.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(toCached(user)); err == nil {
		_ = c.client.Set(ctx, key, raw, userCacheTTL).Err()
	}

	return user, nil
}

// Invalidate drops the cached entry for id. Called after profile edits so the
// next request observes the new profile.
func (c *UserCache) Invalidate(ctx context.Context, id int64) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func toCached(u *domain.User) *cachedUser {
	return &cachedUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func fromCached(doc *cachedUser) *domain.User {
	return &domain.User{
		ID:           doc.ID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
