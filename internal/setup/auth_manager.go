package setup

import (
	"context"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/core/service"
	"github.com/pkg/errors"
)

var getAuthManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AuthManager, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionIssuer, err := getSessionIssuerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	passwordHasher, err := getPasswordHasherFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewAuthManager(userStore, sessionIssuer, passwordHasher), nil
})
