package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"/"`
	Address   string    `env:"ADDRESS,expand" envDefault:":5001"`
	CORS      CORS      `envPrefix:"CORS_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
	Metrics   Metrics   `envPrefix:"METRICS_"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envSeparator:"," envDefault:"*"`
}

// RateLimit applies to the authentication endpoints only.
type RateLimit struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	Interval     time.Duration `env:"INTERVAL" envDefault:"6s"`
	MaxBurst     int           `env:"MAX_BURST" envDefault:"10"`
	CacheSize    int           `env:"CACHE_SIZE" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	TrustHeaders bool          `env:"TRUST_HEADERS" envDefault:"false"`
}

type Metrics struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Username string `env:"USERNAME,expand"`
	Password string `env:"PASSWORD,expand"`
}
