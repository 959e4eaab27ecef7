package config

import (
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the service.
type Config struct {
	Addr              string
	DatabaseURL       string
	UserID            string
	ReconcileInterval time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Addr:              strings.TrimSpace(os.Getenv("ADDR")),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		UserID:            strings.TrimSpace(os.Getenv("USER_ID")),
		ReconcileInterval: parseInterval(strings.TrimSpace(os.Getenv("RECONCILE_INTERVAL_HOURS"))),
	}

	if cfg.Addr == "" {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cfg.Addr = ":" + port
		} else {
			cfg.Addr = ":5000"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskdeck.db"
	}

	// Single fixed identity; authentication is out of scope.
	if cfg.UserID == "" {
		cfg.UserID = "demo-user"
	}

	if cfg.ReconcileInterval == 0 {
		cfg.ReconcileInterval = 6 * time.Hour
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
