package token

import (
	"net/http"
	"strings"

	"github.com/bornholm/mustdo/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// Authenticate implements [authn.Authenticator].
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	authorization := r.Header.Get("Authorization")
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, nil
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
	if token == "" {
		return nil, nil
	}

	user, err := h.authManager.Verify(r.Context(), token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &authn.User{
		ID:       string(user.ID()),
		Username: user.Username(),
	}, nil
}

var _ authn.Authenticator = &Handler{}
