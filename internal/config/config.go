package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

var knownWeakSecrets = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password",
}

type Config struct {
	Port        int    `env:"PORT" envDefault:"8000"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret       string `env:"JWT_SECRET,required"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"30"`
	BcryptCost      int    `env:"BCRYPT_COST" envDefault:"0"`

	ZoomAccountID    string `env:"ZOOM_ACCOUNT_ID,required"`
	ZoomClientID     string `env:"ZOOM_CLIENT_ID,required"`
	ZoomClientSecret string `env:"ZOOM_CLIENT_SECRET,required"`
	ZoomUserID       string `env:"ZOOM_USER_ID" envDefault:"me"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,https://xautrademeeting.com"`

	GeoCacheTTLSeconds int `env:"GEO_CACHE_TTL_SECONDS" envDefault:"3600"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func (c *Config) GeoCacheTTL() time.Duration {
	return time.Duration(c.GeoCacheTTLSeconds) * time.Second
}

func (c *Config) Validate(isProduction bool) error {
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive")
	}

	if isProduction {
		if err := validateSecret("JWT_SECRET", c.JWTSecret); err != nil {
			return err
		}
		if c.RedisURL == "" {
			log.Warn().Msg("REDIS_URL is empty in production: reference data will be served from the database on every request")
		}
	}

	return nil
}

func validateSecret(name, value string) error {
	if len(value) < 32 {
		return fmt.Errorf("%s must be at least 32 characters in production (generate with: openssl rand -base64 32)", name)
	}
	for _, weak := range knownWeakSecrets {
		if value == weak {
			return fmt.Errorf("%s is a known weak default; set a strong secret in production", name)
		}
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
