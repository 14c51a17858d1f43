package setup

import (
	"context"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/http/handler/health"
	"github.com/pkg/errors"
)

func getHealthHandlerFromConfig(ctx context.Context, conf *config.Config) (*health.Handler, error) {
	checks := map[string]health.CheckFunc{}

	if conf.Storage.Database.DSN != memoryDSN {
		db, err := getGormDatabaseFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		checks["database"] = func(ctx context.Context) error {
			internalDB, err := db.DB()
			if err != nil {
				return errors.WithStack(err)
			}

			return errors.WithStack(internalDB.PingContext(ctx))
		}
	}

	return health.NewHandler(checks), nil
}
