package token

import (
	"net/http"

	"github.com/bornholm/mustdo/internal/core/service"
	"github.com/bornholm/mustdo/internal/http/middleware/authn"
)

type Handler struct {
	mux            *http.ServeMux
	authManager    *service.AuthManager
	onUnauthorized http.HandlerFunc
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Middleware returns an authn middleware accepting the bearer tokens
// issued by this handler.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return authn.Middleware(h.onUnauthorized, h)
}

func NewHandler(authManager *service.AuthManager, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:            http.NewServeMux(),
		authManager:    authManager,
		onUnauthorized: opts.OnUnauthorized,
	}

	h.mux.HandleFunc("POST /register", h.handleRegister)
	h.mux.HandleFunc("POST /login", h.handleLogin)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
