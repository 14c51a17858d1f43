package setup

import (
	"context"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/core/service"
	"github.com/pkg/errors"
)

var getTaskManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.TaskManager, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewTaskManager(store), nil
})
