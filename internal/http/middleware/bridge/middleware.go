package bridge

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	httpCtx "github.com/bornholm/mustdo/internal/http/context"
	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/bornholm/mustdo/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Middleware resolves the authenticated identity against the user store.
// Tokens of deleted users are rejected.
func Middleware(userStore port.UserStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authnUser := authn.ContextUser(ctx)
			if authnUser == nil {
				common.HandleError(w, r, common.NewHTTPError(http.StatusUnauthorized))
				return
			}

			user, err := userStore.GetUserByID(ctx, model.UserID(authnUser.ID))
			if err != nil {
				if errors.Is(err, port.ErrNotFound) {
					common.HandleError(w, r, errors.WithStack(port.ErrInvalidToken))
					return
				}

				common.HandleError(w, r, errors.WithStack(err))
				return
			}

			ctx = httpCtx.SetUser(ctx, user)
			ctx = slogx.WithAttrs(ctx, slog.String("user", model.UserString(user)))

			r = r.WithContext(ctx)

			h.ServeHTTP(w, r)
		}

		return fn
	}
}
