// Package config loads the service settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"url_shortener/internal/platform/db"
)

// InsecureDefaultSecret is the signing key used when SECRET_KEY is unset.
// It is only fit for local development.
const InsecureDefaultSecret = "fallback_insecure_dev_key"

// Config holds every setting of the service.
type Config struct {
	ServerAddress  string   `env:"SERVER_ADDRESS" envDefault:":8080" validate:"required"`
	RunMigrations  bool     `env:"RUN_MIGRATIONS" envDefault:"true"`
	URLPrefix      string   `env:"URL_PREFIX" envDefault:"/api" validate:"omitempty,startswith=/"`
	AppVersion     string   `env:"APP_VERSION" envDefault:"1.0.0" validate:"required"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info" validate:"loglevel"`
	AllowedOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1"`

	SecretKey                string `env:"SECRET_KEY" envDefault:"fallback_insecure_dev_key" validate:"required"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256" validate:"oneof=HS256 HS384 HS512"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30" validate:"gt=0"`
	ShortURLLength           int    `env:"SHORT_URL_LENGTH" envDefault:"8" validate:"min=1,max=43"`

	DB db.Config `env:"-"`
}

// AccessTokenTTL returns the configured token lifetime.
func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// UsesInsecureSecret reports whether tokens are signed with the development fallback key.
func (c Config) UsesInsecureSecret() bool {
	return c.SecretKey == InsecureDefaultSecret
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	switch fieldLevel.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func validate(cfg Config) error {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	return v.Struct(cfg)
}

// Load reads .env when present, then the environment, applies defaults and
// validates the result.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.URLPrefix = strings.TrimRight(cfg.URLPrefix, "/")
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	dbCfg, err := db.LoadConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.DB = dbCfg

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
