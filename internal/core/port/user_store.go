package port

import (
	"context"

	"github.com/bornholm/mustdo/internal/core/model"
)

type UserStore interface {
	// CreateUser persists a new user with its password hash, or returns ErrDuplicateUsername
	// if the username is already taken
	CreateUser(ctx context.Context, user model.User, passwordHash string) error

	// FindUserByUsername finds a user by its username, or returns ErrNotFound if not found
	FindUserByUsername(ctx context.Context, username string) (model.User, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// GetUserPasswordHash returns the password hash of a user, or returns ErrNotFound if not found
	GetUserPasswordHash(ctx context.Context, userID model.UserID) (string, error)
}
