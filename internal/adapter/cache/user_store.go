package cache

import (
	"context"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
)

// UserStore caches user lookups. Password hashes are never cached.
type UserStore struct {
	backend   port.UserStore
	userCache *MultiIndexCache[*CacheableUser]
}

// CreateUser implements [port.UserStore].
func (s *UserStore) CreateUser(ctx context.Context, user model.User, passwordHash string) error {
	defer s.userCache.Remove(getUsernameCacheKey(user.Username()))

	return s.backend.CreateUser(ctx, user, passwordHash)
}

// FindUserByUsername implements [port.UserStore].
func (s *UserStore) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	if user, exists := s.userCache.Get(getUsernameCacheKey(username)); exists {
		return user, nil
	}

	user, err := s.backend.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.userCache.Get(getUserIDCacheKey(userID)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserPasswordHash implements [port.UserStore].
func (s *UserStore) GetUserPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	return s.backend.GetUserPasswordHash(ctx, userID)
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend:   backend,
		userCache: NewMultiIndexCache[*CacheableUser](size, ttl),
	}
}

var _ port.UserStore = &UserStore{}
