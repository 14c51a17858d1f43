package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/pkg/errors"
)

type authenticatorFunc func(w http.ResponseWriter, r *http.Request) (*User, error)

func (fn authenticatorFunc) Authenticate(w http.ResponseWriter, r *http.Request) (*User, error) {
	return fn(w, r)
}

func TestMiddleware(t *testing.T) {
	anonymous := authenticatorFunc(func(w http.ResponseWriter, r *http.Request) (*User, error) {
		return nil, nil
	})

	alice := authenticatorFunc(func(w http.ResponseWriter, r *http.Request) (*User, error) {
		return &User{ID: "1", Username: "alice"}, nil
	})

	invalid := authenticatorFunc(func(w http.ResponseWriter, r *http.Request) (*User, error) {
		return nil, errors.WithStack(port.ErrInvalidToken)
	})

	onUnauthorized := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}

	type testCase struct {
		Name           string
		Authenticators []Authenticator
		ExpectedStatus int
		ExpectedUser   string
	}

	testCases := []testCase{
		{
			Name:           "NoAuthenticator",
			Authenticators: []Authenticator{},
			ExpectedStatus: http.StatusTeapot,
		},
		{
			Name:           "Anonymous",
			Authenticators: []Authenticator{anonymous},
			ExpectedStatus: http.StatusTeapot,
		},
		{
			Name:           "FallThrough",
			Authenticators: []Authenticator{anonymous, alice},
			ExpectedStatus: http.StatusOK,
			ExpectedUser:   "alice",
		},
		{
			Name:           "InvalidToken",
			Authenticators: []Authenticator{invalid, alice},
			ExpectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var username string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if user := ContextUser(r.Context()); user != nil {
					username = user.Username
				}
			})

			handler := Middleware(onUnauthorized, tc.Authenticators...)(next)

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %v, got %v", e, g)
			}

			if e, g := tc.ExpectedUser, username; e != g {
				t.Errorf("username: expected %v, got %v", e, g)
			}
		})
	}
}
