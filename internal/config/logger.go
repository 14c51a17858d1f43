package config

import "log/slog"

type Logger struct {
	Level slog.Level `env:"LEVEL" envDefault:"info"`
}
