package setup

import (
	"context"
	"log/slog"

	gormAdapter "github.com/bornholm/mustdo/internal/adapter/gorm"
	"github.com/bornholm/mustdo/internal/adapter/memory"
	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/pkg/errors"
)

const memoryDSN = "memory://"

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Store, error) {
	if conf.Storage.Database.DSN == memoryDSN {
		slog.WarnContext(ctx, "using volatile in-memory store, data will be lost on restart")
		return memory.NewStore(), nil
	}

	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewStore(db), nil
})
