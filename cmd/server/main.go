package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/build"
	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/setup"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	// Embedded IANA database for the overview "tz" parameter
	_ "time/tzdata"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     conf.Logger.Level,
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	if conf.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         conf.Sentry.DSN,
			Environment: conf.Sentry.Environment,
			Release:     build.ShortVersion,
		})
		if err != nil {
			slog.ErrorContext(ctx, "could not initialize sentry", slogx.Error(errors.WithStack(err)))
			os.Exit(1)
		}

		defer sentry.Flush(2 * time.Second)

		slog.InfoContext(ctx, "error reporting enabled", slog.String("environment", conf.Sentry.Environment))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "starting server", slog.String("version", build.LongVersion), slog.String("address", conf.HTTP.Address))

	if err := server.Run(ctx); err != nil {
		slog.Error("could not run server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}
