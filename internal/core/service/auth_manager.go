package service

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/metrics"
	"github.com/pkg/errors"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const (
	messageCredentialsRequired = "Username and password are required"
	messageUsernameTooShort    = "Username must be at least 3 characters long"
	messagePasswordTooShort    = "Password must be at least 6 characters long"
	messageUsernameInvalid     = "Username can only contain letters, numbers, and underscores"
)

// AuthManager registers and authenticates users.
type AuthManager struct {
	users    port.UserStore
	sessions port.SessionIssuer
	hasher   port.PasswordHasher
	now      func() time.Time
}

// Register validates the credentials, creates the user and opens its first session.
func (m *AuthManager) Register(ctx context.Context, username, password string) (session *model.Session, err error) {
	defer func() {
		countAuthAttempt(metrics.KindRegister, err)
	}()

	if err := ValidateCredentials(username, password); err != nil {
		return nil, errors.WithStack(err)
	}

	passwordHash, err := m.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	user := model.NewUser(model.NewUserID(), username, m.now().UTC())

	if err := m.users.CreateUser(ctx, user, passwordHash); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "user registered", slog.String("user", model.UserString(user)))

	session, err = m.sessions.Issue(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "could not issue session")
	}

	return session, nil
}

// Authenticate checks the credentials and opens a new session.
// Unknown usernames and wrong passwords are both reported as ErrInvalidCredentials.
func (m *AuthManager) Authenticate(ctx context.Context, username, password string) (session *model.Session, err error) {
	defer func() {
		countAuthAttempt(metrics.KindLogin, err)
	}()

	if username == "" || password == "" {
		return nil, errors.WithStack(port.NewValidationError(messageCredentialsRequired))
	}

	user, err := m.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(port.ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("user", model.UserString(user)))

	passwordHash, err := m.users.GetUserPasswordHash(ctx, user.ID())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := m.hasher.Compare(passwordHash, password); err != nil {
		if errors.Is(err, port.ErrInvalidCredentials) {
			slog.InfoContext(ctx, "rejected login attempt")
		}

		return nil, errors.WithStack(err)
	}

	session, err = m.sessions.Issue(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "could not issue session")
	}

	return session, nil
}

// Verify returns the user a session token was issued for.
func (m *AuthManager) Verify(ctx context.Context, token string) (model.User, error) {
	user, err := m.sessions.Verify(ctx, token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// ValidateCredentials checks registration inputs, in order: presence,
// username length, password length, username charset.
func ValidateCredentials(username, password string) error {
	switch {
	case username == "" || password == "":
		return port.NewValidationError(messageCredentialsRequired)
	case len(username) < minUsernameLength:
		return port.NewValidationError(messageUsernameTooShort)
	case len(password) < minPasswordLength:
		return port.NewValidationError(messagePasswordTooShort)
	case !usernamePattern.MatchString(username):
		return port.NewValidationError(messageUsernameInvalid)
	default:
		return nil
	}
}

func countAuthAttempt(kind string, err error) {
	result := metrics.ResultSuccess

	switch {
	case err == nil:
	case port.IsValidationError(err), errors.Is(err, port.ErrInvalidCredentials), errors.Is(err, port.ErrDuplicateUsername):
		result = metrics.ResultRejected
	default:
		result = metrics.ResultError
	}

	metrics.TotalAuthAttempts.WithLabelValues(kind, result).Inc()
}

func NewAuthManager(users port.UserStore, sessions port.SessionIssuer, hasher port.PasswordHasher) *AuthManager {
	return &AuthManager{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		now:      time.Now,
	}
}
