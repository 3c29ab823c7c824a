package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT     JWTConfig
	Lockout LockoutConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// JWTConfig drives both the token issuer and the auth gate; the two must
// share these values or verification fails.
type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	Issuer   string        `env:"JWT_ISSUER,   default=fornecedores-api"`
	Audience string        `env:"JWT_AUDIENCE, default=https://localhost"`
	TTL      time.Duration `env:"JWT_TTL,      default=2h"`
}

type LockoutConfig struct {
	MaxAttempts    int           `env:"LOCKOUT_MAX_ATTEMPTS,     default=5"`
	Window         time.Duration `env:"LOCKOUT_WINDOW,           default=5m"`
	OnFailure      bool          `env:"LOCKOUT_ON_FAILURE,       default=true"`
	ResetOnSuccess bool          `env:"LOCKOUT_RESET_ON_SUCCESS, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fornecedores"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
