package config

import "strings"

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// LoadLogConfig loads logging configuration from environment variables
func LoadLogConfig(getenv func(string) string) LogConfig {
	config := LogConfig{
		Level:  strings.ToLower(getenv("LOG_LEVEL")),
		Format: strings.ToLower(getenv("LOG_FORMAT")),
	}
	if config.Level == "" {
		config.Level = "info"
	}
	if config.Format == "" {
		config.Format = "console"
	}
	return config
}
