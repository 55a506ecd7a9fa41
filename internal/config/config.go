package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DBPath      string
	UploadDir   string
	AdminAPIKey string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8585"),
		DBPath:      getEnv("DB_PATH", "./nexo.db"),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
	}

	// The admin key is allowed to be absent at startup; admin endpoints then
	// report a server misconfiguration instead of ever letting a request in.
	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY environment variable not set. Admin endpoints will refuse all requests until it is configured.")
	}

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "8585"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
