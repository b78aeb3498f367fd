package config

import (
	"os"
	"time"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	OpenAIAPIKey string
	OpenAIModel  string

	SessionTTL   time.Duration
	CookieSecure bool
}

func Load() Config {

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),

		SessionTTL:   24 * time.Hour,
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}

	return cfg

}
