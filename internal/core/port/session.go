package port

import (
	"context"

	"github.com/bornholm/mustdo/internal/core/model"
)

type SessionIssuer interface {
	// Issue creates a new signed session for the given user
	Issue(ctx context.Context, user model.User) (*model.Session, error)

	// Verify checks a session token and returns the user it was issued for, or ErrInvalidToken
	Verify(ctx context.Context, token string) (model.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns ErrInvalidCredentials when the password does not match the hash
	Compare(hash string, password string) error
}
