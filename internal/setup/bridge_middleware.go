package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/http/middleware/bridge"
	"github.com/pkg/errors"
)

func getBridgeMiddlewareFromConfig(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bridge.Middleware(userStore), nil
}
