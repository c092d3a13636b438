package config

import (
	"os"
	"strconv"

	"baselinedash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the source sheet names and upload limits
type DataConfig struct {
	Sheet2425   string // sheet name inside the AY 24-25 workbook
	Sheet2526   string // sheet name inside the AY 25-26 workbook
	MaxUploadMB int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Data: DataConfig{
			Sheet2425:   getEnv("SHEET_AY2425", "BaseLine-AY2425"),
			Sheet2526:   getEnv("SHEET_AY2526", "BL-Data"),
			MaxUploadMB: getEnvInt64("MAX_UPLOAD_MB", 50),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Data.Sheet2425 == "" || c.Data.Sheet2526 == "" {
		return errors.InvalidInput("source sheet names must not be empty")
	}
	if c.Data.MaxUploadMB <= 0 {
		return errors.InvalidInput("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
