package jwt

import "time"

type Options struct {
	TTL    time.Duration
	Issuer string
	Clock  func() time.Time
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TTL:    24 * time.Hour,
		Issuer: "mustdo",
		Clock:  time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithTTL(ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.TTL = ttl
	}
}

func WithIssuer(issuer string) OptionFunc {
	return func(opts *Options) {
		opts.Issuer = issuer
	}
}

func WithClock(clock func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Clock = clock
	}
}
