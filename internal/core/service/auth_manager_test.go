package service

import (
	"context"
	"testing"

	"github.com/bornholm/mustdo/internal/adapter/jwt"
	"github.com/bornholm/mustdo/internal/adapter/memory"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthManager() *AuthManager {
	return NewAuthManager(memory.NewStore(), jwt.NewIssuer([]byte("test")), crypto.NewBcryptHasher(bcrypt.MinCost))
}

func TestValidateCredentials(t *testing.T) {
	type testCase struct {
		Username string
		Password string
		Expected string
	}

	testCases := []testCase{
		{Username: "", Password: "secret", Expected: messageCredentialsRequired},
		{Username: "bob", Password: "", Expected: messageCredentialsRequired},
		// Length checks come before the charset check
		{Username: "a!", Password: "secret", Expected: messageUsernameTooShort},
		{Username: "bob!", Password: "short", Expected: messagePasswordTooShort},
		{Username: "bob!", Password: "secret", Expected: messageUsernameInvalid},
		{Username: "bob smith", Password: "secret", Expected: messageUsernameInvalid},
		{Username: "bob_42", Password: "secret", Expected: ""},
	}

	for _, tc := range testCases {
		err := ValidateCredentials(tc.Username, tc.Password)

		if tc.Expected == "" {
			if err != nil {
				t.Errorf("ValidateCredentials(%q, %q): unexpected error %+v", tc.Username, tc.Password, err)
			}
			continue
		}

		var validationErr *port.ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("ValidateCredentials(%q, %q): expected validation error, got %+v", tc.Username, tc.Password, err)
			continue
		}

		if e, g := tc.Expected, validationErr.Message; e != g {
			t.Errorf("ValidateCredentials(%q, %q): expected %v, got %v", tc.Username, tc.Password, e, g)
		}
	}
}

func TestAuthManager(t *testing.T) {
	ctx := context.Background()
	manager := newTestAuthManager()

	session, err := manager.Register(ctx, "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if session.Token == "" {
		t.Errorf("session.Token should not be empty")
	}

	if _, err := manager.Register(ctx, "alice", "another"); !errors.Is(err, port.ErrDuplicateUsername) {
		t.Errorf("Register(alice): expected port.ErrDuplicateUsername, got %+v", err)
	}

	loggedIn, err := manager.Authenticate(ctx, "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := session.User.ID(), loggedIn.User.ID(); e != g {
		t.Errorf("loggedIn.User.ID(): expected %v, got %v", e, g)
	}

	if _, err := manager.Authenticate(ctx, "alice", "wrong!"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Errorf("Authenticate(wrong password): expected port.ErrInvalidCredentials, got %+v", err)
	}

	if _, err := manager.Authenticate(ctx, "nobody", "s3cr3t"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Errorf("Authenticate(unknown user): expected port.ErrInvalidCredentials, got %+v", err)
	}

	if _, err := manager.Authenticate(ctx, "", ""); !port.IsValidationError(err) {
		t.Errorf("Authenticate(empty): expected validation error, got %+v", err)
	}

	user, err := manager.Verify(ctx, loggedIn.Token)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "alice", user.Username(); e != g {
		t.Errorf("user.Username(): expected %v, got %v", e, g)
	}
}
