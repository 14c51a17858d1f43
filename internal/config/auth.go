package config

import "time"

type Auth struct {
	// Signing secret of the session tokens, generated at startup when empty
	Secret     string        `env:"SECRET,expand"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
}
