package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/mustdo/internal/adapter/jwt"
	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/crypto"
	"github.com/pkg/errors"
)

var getSessionIssuerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.SessionIssuer, error) {
	secret := conf.Auth.Secret
	if secret == "" {
		generated, err := crypto.RandomSecret(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate session secret")
		}

		slog.WarnContext(ctx, "no session secret configured, using a random one: sessions will not survive a restart")

		secret = generated
	}

	return jwt.NewIssuer([]byte(secret), jwt.WithTTL(conf.Auth.TokenTTL)), nil
})

var getPasswordHasherFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.PasswordHasher, error) {
	return crypto.NewBcryptHasher(conf.Auth.BcryptCost), nil
})
