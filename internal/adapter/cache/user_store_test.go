package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/pkg/errors"
)

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	backend := newCountingUserStore()
	store := NewUserStore(backend, 10, time.Minute)

	user := model.NewUser(model.NewUserID(), "alice", time.Now())

	if err := store.CreateUser(ctx, user, "hash"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 3 {
		found, err := store.GetUserByID(ctx, user.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "alice", found.Username(); e != g {
			t.Errorf("found.Username(): expected %v, got %v", e, g)
		}
	}

	if e, g := 1, backend.calls["GetUserByID"]; e != g {
		t.Errorf("backend GetUserByID calls: expected %v, got %v", e, g)
	}

	// The user is now reachable by its username without hitting the backend
	if _, err := store.FindUserByUsername(ctx, "alice"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, backend.calls["FindUserByUsername"]; e != g {
		t.Errorf("backend FindUserByUsername calls: expected %v, got %v", e, g)
	}

	if _, err := store.GetUserByID(ctx, model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetUserByID(unknown): expected port.ErrNotFound, got %+v", err)
	}

	for range 2 {
		if _, err := store.GetUserPasswordHash(ctx, user.ID()); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := 2, backend.calls["GetUserPasswordHash"]; e != g {
		t.Errorf("backend GetUserPasswordHash calls: expected %v, got %v", e, g)
	}
}

type countingUserStore struct {
	users  map[model.UserID]model.User
	hashes map[model.UserID]string
	calls  map[string]int
}

func newCountingUserStore() *countingUserStore {
	return &countingUserStore{
		users:  map[model.UserID]model.User{},
		hashes: map[model.UserID]string{},
		calls:  map[string]int{},
	}
}

// CreateUser implements [port.UserStore].
func (s *countingUserStore) CreateUser(ctx context.Context, user model.User, passwordHash string) error {
	s.calls["CreateUser"]++

	for _, u := range s.users {
		if u.Username() == user.Username() {
			return errors.WithStack(port.ErrDuplicateUsername)
		}
	}

	s.users[user.ID()] = user
	s.hashes[user.ID()] = passwordHash

	return nil
}

// FindUserByUsername implements [port.UserStore].
func (s *countingUserStore) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	s.calls["FindUserByUsername"]++

	for _, u := range s.users {
		if u.Username() == username {
			return u, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// GetUserByID implements [port.UserStore].
func (s *countingUserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.calls["GetUserByID"]++

	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// GetUserPasswordHash implements [port.UserStore].
func (s *countingUserStore) GetUserPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	s.calls["GetUserPasswordHash"]++

	hash, exists := s.hashes[userID]
	if !exists {
		return "", errors.WithStack(port.ErrNotFound)
	}

	return hash, nil
}

var _ port.UserStore = &countingUserStore{}
