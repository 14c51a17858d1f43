package setup

import (
	"context"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	taskManager, err := getTaskManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return api.NewHandler(taskManager), nil
}
