package ratelimit

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/bornholm/mustdo/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const messageTooManyRequests = "Too many requests, please try again later."

// Middleware limits requests per client address with a token bucket.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	limiters := expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.CacheTTL)

	limiterOf := func(client string) *rate.Limiter {
		if limiter, exists := limiters.Get(client); exists {
			return limiter
		}

		limiter := rate.NewLimiter(rate.Every(opts.Interval), opts.MaxBurst)
		limiters.Add(client, limiter)

		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientKey(r, opts.TrustHeaders)
			limiter := limiterOf(client)
			now := time.Now()

			reservation := limiter.ReserveN(now, 1)

			if delay := reservation.DelayFrom(now); !reservation.OK() || delay > 0 {
				reservation.CancelAt(now)

				if reservation.OK() {
					w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				}

				metrics.TotalRateLimitedRequests.Inc()

				slog.WarnContext(r.Context(), "request rate limited", slog.String("client", client), slog.String("path", r.URL.Path))

				common.HandleError(w, r, common.NewError("rate limited", common.CodeRateLimited, messageTooManyRequests, http.StatusTooManyRequests))
				return
			}

			writeQuotaHeaders(w, limiter, opts, now)

			next.ServeHTTP(w, r)
		})
	}
}

func writeQuotaHeaders(w http.ResponseWriter, limiter *rate.Limiter, opts *Options, now time.Time) {
	remaining := limiter.TokensAt(now)
	missing := float64(opts.MaxBurst) - remaining

	reset := now
	if missing > 0 {
		reset = now.Add(time.Duration(missing * float64(opts.Interval)))
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.MaxBurst))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(math.Max(0, math.Floor(remaining)))))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
}

func clientKey(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			return strings.TrimSpace(first)
		}

		if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
			return realIP
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
