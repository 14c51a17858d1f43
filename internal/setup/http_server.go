package setup

import (
	"context"
	stdhttp "net/http"

	"github.com/bornholm/mustdo/internal/config"
	"github.com/bornholm/mustdo/internal/http"
	"github.com/bornholm/mustdo/internal/http/handler/metrics"
	"github.com/bornholm/mustdo/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	authn, err := getTokenAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	authnMiddleware := authn.Middleware()

	bridgeMiddleware, err := getBridgeMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure bridge middleware from config")
	}

	health, err := getHealthHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure health handler from config")
	}

	var authHandler stdhttp.Handler = authn
	if conf.HTTP.RateLimit.Enabled {
		rateLimit := ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithRate(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
		)

		authHandler = rateLimit(authHandler)
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithCORSAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/api/auth/", authHandler),
		http.WithMount("/api/", authnMiddleware(bridgeMiddleware(api))),
		http.WithMount("/healthz", health),
	}

	if conf.HTTP.Metrics.Enabled {
		metricsHandler := metrics.NewHandler()

		if conf.HTTP.Metrics.Username != "" {
			metricsHandler = http.BasicAuth(conf.HTTP.Metrics.Username, conf.HTTP.Metrics.Password)(metricsHandler)
		}

		options = append(options, http.WithMount("/metrics", metricsHandler))
	}

	server := http.NewServer(options...)

	return server, nil
}
