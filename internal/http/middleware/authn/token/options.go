package token

import (
	"net/http"

	"github.com/bornholm/mustdo/internal/http/handler/common"
)

type Options struct {
	// Handler used when a protected route is reached without a bearer token
	OnUnauthorized http.HandlerFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		OnUnauthorized: func(w http.ResponseWriter, r *http.Request) {
			common.HandleError(w, r, common.NewError("missing token", common.CodeUnauthorized, "Access token required", http.StatusUnauthorized))
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithOnUnauthorized(fn http.HandlerFunc) OptionFunc {
	return func(opts *Options) {
		opts.OnUnauthorized = fn
	}
}
