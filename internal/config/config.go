package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything the process reads from the environment.
type Config struct {
	Addr          string
	Mode          string // gin mode: debug, release or test
	DatabaseDSN   string
	TokenSecret   string
	TokenTTL      time.Duration
	SessionSecret string
	StripeKey     string
	BaseURL       string
	TemplatesGlob string
	StaticDir     string
}

// Load reads .env (when present) and the environment. DB_DSN and
// STRIPE_SECRET_KEY have no sane defaults and stay empty when unset;
// JWT_KEY is mandatory because tokens signed with an empty secret are
// worthless.
func Load() (*Config, error) {
	// .env from the repo root or the working dir; the nearest file wins
	for _, f := range []string{"../../.env", "../.env", ".env"} {
		_ = godotenv.Overload(f)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ADDR", ":2000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("BASE_URL", "http://localhost:2000")
	v.SetDefault("SESSION_SECRET", "dev_fallback_secret")
	v.SetDefault("TEMPLATES_GLOB", "internal/views/*.tmpl")
	v.SetDefault("STATIC_DIR", "./static")

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parse TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Addr:          v.GetString("ADDR"),
		Mode:          v.GetString("GIN_MODE"),
		DatabaseDSN:   v.GetString("DB_DSN"),
		TokenSecret:   v.GetString("JWT_KEY"),
		TokenTTL:      ttl,
		SessionSecret: v.GetString("SESSION_SECRET"),
		StripeKey:     v.GetString("STRIPE_SECRET_KEY"),
		BaseURL:       v.GetString("BASE_URL"),
		TemplatesGlob: v.GetString("TEMPLATES_GLOB"),
		StaticDir:     v.GetString("STATIC_DIR"),
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("JWT_KEY is empty (check your .env)")
	}
	return cfg, nil
}
