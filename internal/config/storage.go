package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

// Database DSN is either a SQLite file path or "memory://" for a volatile store.
type Database struct {
	DSN   string        `env:"DSN" envDefault:"data.sqlite"`
	Cache DatabaseCache `envPrefix:"CACHE_"`
}

type DatabaseCache struct {
	Users CacheSettings `envPrefix:"USERS_"`
}

type CacheSettings struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Size    int           `env:"SIZE" envDefault:"256"`
	TTL     time.Duration `env:"TTL" envDefault:"5m"`
}
