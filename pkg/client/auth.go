package client

import (
	"context"
	"net/http"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/http/middleware/authn/token"
	"github.com/pkg/errors"
)

func (c *Client) Register(ctx context.Context, username, password string) (*model.Session, error) {
	return c.authenticate(ctx, "/auth/register", username, password)
}

func (c *Client) Login(ctx context.Context, username, password string) (*model.Session, error) {
	return c.authenticate(ctx, "/auth/login", username, password)
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.jsonRequest(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) authenticate(ctx context.Context, path string, username, password string) (*model.Session, error) {
	req := token.CredentialsRequest{
		Username: username,
		Password: password,
	}

	var res token.SessionResponse
	if err := c.jsonRequest(ctx, http.MethodPost, path, req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &model.Session{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      model.NewUser(res.User.ID, res.User.Username, time.Time{}),
	}, nil
}
