package setup

import (
	"context"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/http/middleware/authn/token"
	"github.com/pkg/errors"
)

var getTokenAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*token.Handler, error) {
	authManager, err := getAuthManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return token.NewHandler(authManager), nil
})
