package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string `envconfig:"PORT" default:"5000"`
	DBDSN           string `envconfig:"DB_DSN" default:"lifelink.db"`
	LogFile         string `envconfig:"LOG_FILE"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	SeedDemo        bool   `envconfig:"SEED_DEMO" default:"true"`
	CORSOrigins     string `envconfig:"CORS_ORIGINS" default:"*"`
	BodyLimit       int    `envconfig:"BODY_LIMIT" default:"1048576"`
	RateLimitPerMin int    `envconfig:"RATE_LIMIT_PER_MIN" default:"120"`
	CookieSecure    bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// .env is optional; real environment wins over file values
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = 1 << 20
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = 120
	}
	return cfg, nil
}

// Defaults returns the configuration used when no environment is set.
func Defaults() Config {
	return Config{
		Port:            "5000",
		DBDSN:           "lifelink.db",
		LogLevel:        "info",
		SeedDemo:        true,
		CORSOrigins:     "*",
		BodyLimit:       1 << 20,
		RateLimitPerMin: 120,
	}
}
