package http

import (
	"net/http"
	"time"
)

type Options struct {
	Address            string
	BaseURL            string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
	Mounts             map[string]http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:            ":5001",
		BaseURL:            "",
		CORSAllowedOrigins: []string{"*"},
		ShutdownTimeout:    30 * time.Second,
		Mounts:             map[string]http.Handler{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// WithMount registers a handler on the given prefix. Prefixes ending with
// a slash are stripped before reaching the handler.
func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithCORSAllowedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		opts.CORSAllowedOrigins = origins
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}
