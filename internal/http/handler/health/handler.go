package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/http/handler/common"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// CheckFunc reports an error when a dependency cannot serve requests.
type CheckFunc func(ctx context.Context) error

type Response struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	startTime time.Time
	checks    map[string]CheckFunc
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res := Response{
		Status: statusOK,
		Uptime: time.Since(h.startTime).Truncate(time.Second).String(),
		Checks: make(map[string]string, len(h.checks)),
	}

	statusCode := http.StatusOK

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			slog.ErrorContext(ctx, "health check failed", slog.String("check", name), slogx.Error(err))
			res.Checks[name] = statusUnavailable
			res.Status = statusUnavailable
			statusCode = http.StatusServiceUnavailable
			continue
		}

		res.Checks[name] = statusOK
	}

	common.WriteJSON(w, r, statusCode, res)
}

func NewHandler(checks map[string]CheckFunc) *Handler {
	if checks == nil {
		checks = map[string]CheckFunc{}
	}

	return &Handler{
		startTime: time.Now(),
		checks:    checks,
	}
}

var _ http.Handler = &Handler{}
