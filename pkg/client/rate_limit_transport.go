package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests answered with 429 Too Many Requests
// after the delay advertised by the server. The last 429 response is
// returned untouched once MaxRetries is exhausted.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
	// MaxWait caps the advertised delay, zero means no cap.
	MaxWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	ctx := req.Context()
	current := req

	for attempt := 0; ; attempt++ {
		res, err := base.RoundTrip(current)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		if req.Body != nil && req.GetBody == nil {
			// The body has been consumed and cannot be replayed
			return res, nil
		}

		wait := t.retryDelay(res.Header, time.Now())

		_, _ = io.Copy(io.Discard, res.Body)
		res.Body.Close()

		slog.DebugContext(ctx, "request rate limited, retrying",
			slog.String("path", req.URL.Path),
			slog.Duration("wait", wait),
			slog.Int("attempt", attempt+1),
		)

		if err := sleep(ctx, wait); err != nil {
			return nil, errors.WithStack(err)
		}

		current, err = replay(req)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
}

// retryDelay reads Retry-After (seconds or HTTP date) then X-RateLimit-Reset
// (unix timestamp), falling back to DefaultWait.
func (t *RateLimitTransport) retryDelay(header http.Header, now time.Time) time.Duration {
	wait := t.DefaultWait

	if retryAfter := header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait = time.Duration(seconds) * time.Second
		} else if date, err := http.ParseTime(retryAfter); err == nil {
			wait = date.Sub(now)
		}
	} else if reset := header.Get("X-RateLimit-Reset"); reset != "" {
		if timestamp, err := strconv.ParseInt(reset, 10, 64); err == nil {
			wait = time.Unix(timestamp, 0).Sub(now)
		}
	}

	if wait < 0 {
		wait = 0
	}

	if t.MaxWait > 0 && wait > t.MaxWait {
		wait = t.MaxWait
	}

	return wait
}

func replay(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, errors.Wrap(err, "could not rewind request body")
		}

		clone.Body = body
	}

	return clone, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}

var _ http.RoundTripper = &RateLimitTransport{}
